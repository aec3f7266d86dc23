package stt_test

import (
	"github.com/signbridge/server/adapters/stt"
	"github.com/signbridge/server/domain/repositories"
)

var _ repositories.SpeechToText = &stt.GoogleSpeechToText{}
