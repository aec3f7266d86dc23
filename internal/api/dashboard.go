package api

// dashboardHTML is the embedded test page exercising both conversion
// endpoints: a textarea for text-to-sign and a MediaRecorder flow for
// speech-to-sign.
const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Sign Language Dashboard</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh; padding: 20px;
        }
        .container {
            max-width: 800px; margin: 0 auto; background: white;
            border-radius: 20px; padding: 40px;
            box-shadow: 0 20px 60px rgba(0,0,0,0.1);
        }
        h1 {
            text-align: center; color: #333; margin-bottom: 40px; font-size: 2.5em;
        }
        .section {
            margin-bottom: 40px; padding: 30px;
            border: 2px solid #e1e8ed; border-radius: 15px;
            background: linear-gradient(145deg, #f8f9fa, #ffffff);
        }
        .section h2 { color: #495057; margin-bottom: 20px; font-size: 1.5em; }
        textarea {
            width: 100%; padding: 15px; border: 2px solid #dee2e6;
            border-radius: 10px; font-size: 16px; resize: vertical; font-family: inherit;
        }
        button {
            background: linear-gradient(135deg, #667eea, #764ba2);
            color: white; border: none; padding: 15px 30px;
            border-radius: 10px; font-size: 16px; font-weight: bold;
            cursor: pointer; margin-top: 15px;
        }
        button:disabled { background: #6c757d; cursor: not-allowed; }
        .recording { background: linear-gradient(135deg, #dc3545, #c82333) !important; }
        .status { margin: 15px 0; padding: 10px; border-radius: 8px; font-weight: bold; }
        .success { background: #d4edda; color: #155724; border: 1px solid #c3e6cb; }
        .error { background: #f8d7da; color: #721c24; border: 1px solid #f5c6cb; }
        .info { background: #d1ecf1; color: #0c5460; border: 1px solid #bee5eb; }
        .video-container { text-align: center; margin: 20px 0; }
        video {
            max-width: 100%; height: auto; border-radius: 15px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.2); background: #000;
        }
        .video-info { margin-top: 10px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Sign Language Dashboard</h1>

        <div class="section">
            <h2>Text to Sign Language</h2>
            <textarea id="textInput" rows="4" placeholder="Type your message here (e.g., hello world)..."></textarea>
            <button onclick="convertText()">Convert Text to Sign Video</button>
            <div id="textResult"></div>
        </div>

        <div class="section">
            <h2>Speech to Sign Language</h2>
            <button id="recordBtn" onclick="toggleRecording()">Start Recording</button>
            <div id="speechStatus"></div>
            <div id="speechResult"></div>
        </div>
    </div>

    <script>
        var API_BASE = window.location.origin;
        var mediaRecorder = null;
        var audioChunks = [];
        var isRecording = false;

        async function convertText() {
            var text = document.getElementById('textInput').value.trim();
            var resultDiv = document.getElementById('textResult');

            if (!text) {
                resultDiv.innerHTML = '<div class="status error">Please enter some text</div>';
                return;
            }

            resultDiv.innerHTML = '<div class="status info">Creating sign language video...</div>';

            try {
                var response = await fetch(API_BASE + '/text-to-sign', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ text: text })
                });

                var data = await response.json();

                if (response.ok) {
                    showVideo(resultDiv, data.video_file, 'Text: "' + data.text + '"');
                } else {
                    resultDiv.innerHTML = '<div class="status error">Error: ' + data.detail + '</div>';
                }
            } catch (error) {
                resultDiv.innerHTML = '<div class="status error">Error: ' + error.message + '</div>';
            }
        }

        async function toggleRecording() {
            var btn = document.getElementById('recordBtn');
            var statusDiv = document.getElementById('speechStatus');

            if (!isRecording) {
                try {
                    var stream = await navigator.mediaDevices.getUserMedia({ audio: true });
                    mediaRecorder = new MediaRecorder(stream);
                    audioChunks = [];

                    mediaRecorder.ondataavailable = function(event) {
                        if (event.data.size > 0) audioChunks.push(event.data);
                    };

                    mediaRecorder.onstop = function() {
                        var audioBlob = new Blob(audioChunks, { type: 'audio/webm' });
                        convertSpeech(audioBlob);
                    };

                    mediaRecorder.start();
                    isRecording = true;
                    btn.textContent = 'Stop Recording';
                    btn.className = 'recording';
                    statusDiv.innerHTML = '<div class="status info">Recording... Click stop when done</div>';
                } catch (error) {
                    statusDiv.innerHTML = '<div class="status error">Microphone access denied. Please allow microphone access.</div>';
                }
            } else {
                mediaRecorder.stop();
                mediaRecorder.stream.getTracks().forEach(function(track) { track.stop(); });
                isRecording = false;
                btn.textContent = 'Start Recording';
                btn.className = '';
                statusDiv.innerHTML = '<div class="status info">Processing audio...</div>';
            }
        }

        async function convertSpeech(audioBlob) {
            var statusDiv = document.getElementById('speechStatus');
            var resultDiv = document.getElementById('speechResult');

            try {
                var formData = new FormData();
                formData.append('audio_file', audioBlob, 'recording.webm');

                statusDiv.innerHTML = '<div class="status info">Converting speech to text...</div>';

                var response = await fetch(API_BASE + '/speech-to-sign', {
                    method: 'POST',
                    body: formData
                });

                var data = await response.json();
                statusDiv.innerHTML = '';

                if (response.ok) {
                    showVideo(resultDiv, data.video_file, 'Speech: "' + data.text + '"');
                } else {
                    resultDiv.innerHTML = '<div class="status error">Error: ' + data.detail + '</div>';
                }
            } catch (error) {
                statusDiv.innerHTML = '';
                resultDiv.innerHTML = '<div class="status error">Error: ' + error.message + '</div>';
            }
        }

        function showVideo(div, videoFile, caption) {
            var videoUrl = API_BASE + '/video/' + videoFile + '?t=' + new Date().getTime();
            div.innerHTML =
                '<div class="status success">Video created successfully!</div>' +
                '<div class="video-container">' +
                '<video controls autoplay muted preload="auto" style="width: 100%; max-width: 640px;">' +
                '<source src="' + videoUrl + '" type="video/mp4">' +
                'Your browser does not support video playback.' +
                '</video>' +
                '<div class="video-info">' + caption + '</div>' +
                '</div>';

            var videoElement = div.querySelector('video');
            videoElement.addEventListener('error', function() {
                div.innerHTML += '<div class="status error">Video playback error. File may not be compatible with your browser.</div>';
            });
        }
    </script>
</body>
</html>
`
