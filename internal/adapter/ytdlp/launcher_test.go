package ytdlp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fetchbot/internal/domain"
)

const fakeTool = `#!/bin/sh
if [ -n "$FAKE_YTDLP_ARGS" ]; then
  printf '%s\n' "$@" > "$FAKE_YTDLP_ARGS"
fi
out=""
url=""
ext="mp4"
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift 2 ;;
    -x) ext="mp3"; shift ;;
    --) url="$2"; shift 2 ;;
    *) shift ;;
  esac
done
case "$url" in
  *fail*) echo "ERROR: Unsupported URL: $url" >&2; exit 1 ;;
  *slow*) exec sleep 30 ;;
  *child*) sleep 30 ;;
esac
printf 'media' > "${out%'.%(ext)s'}.$ext"
`

func writeFakeTool(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yt-dlp")
	require.NoError(t, os.WriteFile(path, []byte(fakeTool), 0700))
	return path
}

func specFor(t *testing.T, url string, kind domain.MediaKind) domain.FetchSpec {
	t.Helper()
	dir := t.TempDir()
	return domain.FetchSpec{
		URL:    url,
		Format: kind.Format(),
		Kind:   kind,
		Output: domain.OutputFile{
			StagingPath: filepath.Join(dir, "staging"+kind.Extension()),
			FinalPath:   filepath.Join(dir, "final"+kind.Extension()),
		},
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid path", path: "/tmp/video.mp4"},
		{name: "valid path with spaces", path: "/tmp/my video.mp4"},
		{name: "empty path", path: "", wantErr: ErrEmptyPath},
		{name: "null byte at start", path: "\x00/tmp/video.mp4", wantErr: ErrInvalidPath},
		{name: "null byte in middle", path: "/tmp/\x00video.mp4", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, validateURL("https://www.youtube.com/watch?v=abc"))
	assert.ErrorIs(t, validateURL(""), ErrInvalidURL)
	assert.ErrorIs(t, validateURL("--exec=rm -rf /"), ErrInvalidURL)
	assert.ErrorIs(t, validateURL("https://x\x00y"), ErrInvalidURL)
}

func TestArgs(t *testing.T) {
	audio := domain.FetchSpec{
		URL:    "https://example.com/a",
		Format: "bestaudio",
		Kind:   domain.KindAudio,
		Output: domain.OutputFile{StagingPath: "/d/.staging/x.mp3"},
	}
	assert.Equal(t, []string{
		"-f", "bestaudio",
		"-o", "/d/.staging/x.%(ext)s",
		"-x", "--audio-format", "mp3",
		"--no-playlist", "--", "https://example.com/a",
	}, args(audio))

	video := audio
	video.Kind = domain.KindMuteVideo
	video.Format = "bestvideo"
	video.Output.StagingPath = "/d/.staging/x.mp4"
	got := args(video)
	assert.Contains(t, got, "--merge-output-format")
	assert.Contains(t, got, "--remux-video")
	assert.NotContains(t, got, "-x")
	assert.Equal(t, "https://example.com/a", got[len(got)-1])
	assert.Equal(t, "--", got[len(got)-2])
}

func TestOutputTemplate(t *testing.T) {
	assert.Equal(t, "/d/.staging/abc.%(ext)s", outputTemplate("/d/.staging/abc.mp4"))
	assert.Equal(t, "/d/100%%/abc.%(ext)s", outputTemplate("/d/100%/abc.mp3"))
}

func TestLaunch_Success(t *testing.T) {
	l := NewLauncher(writeFakeTool(t))
	spec := specFor(t, "https://www.youtube.com/watch?v=abc", domain.KindAudio)

	proc, err := l.Launch(context.Background(), spec)
	require.NoError(t, err)
	assert.Positive(t, proc.PID())

	require.NoError(t, proc.Wait())
	data, err := os.ReadFile(spec.Output.StagingPath)
	require.NoError(t, err)
	assert.Equal(t, "media", string(data))
}

func TestLaunch_FailureCarriesStderr(t *testing.T) {
	l := NewLauncher(writeFakeTool(t))
	spec := specFor(t, "https://fail.example/x", domain.KindVideo)

	proc, err := l.Launch(context.Background(), spec)
	require.NoError(t, err)

	err = proc.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessFailure)

	var procErr *domain.ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, 1, procErr.ExitCode)
	assert.Contains(t, procErr.Stderr, "Unsupported URL")

	// Wait is idempotent.
	assert.Equal(t, err, proc.Wait())
}

func TestLaunch_ShellMetacharactersAreInert(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	t.Setenv("FAKE_YTDLP_ARGS", argsFile)
	l := NewLauncher(writeFakeTool(t))
	marker := filepath.Join(t.TempDir(), "pwned")
	url := "https://www.youtube.com/watch?v=a;touch " + marker + "&$(touch " + marker + ")"
	spec := specFor(t, url, domain.KindAudio)

	proc, err := l.Launch(context.Background(), spec)
	require.NoError(t, err)
	require.NoError(t, proc.Wait())

	_, statErr := os.Stat(marker)
	assert.True(t, os.IsNotExist(statErr))

	recorded, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(recorded)), "\n")
	assert.Equal(t, url, lines[len(lines)-1])
}

func TestLaunch_Terminate(t *testing.T) {
	l := NewLauncher(writeFakeTool(t))
	spec := specFor(t, "https://slow.example/x", domain.KindVideo)

	proc, err := l.Launch(context.Background(), spec)
	require.NoError(t, err)

	require.NoError(t, proc.Terminate())

	done := make(chan error, 1)
	go func() { done <- proc.Wait() }()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrProcessFailure)
	case <-time.After(5 * time.Second):
		t.Fatal("process did not exit after terminate")
	}

	// Signalling an exited process is not an error.
	assert.NoError(t, proc.Terminate())
}

func TestLaunch_TerminateReachesChildren(t *testing.T) {
	l := NewLauncher(writeFakeTool(t))
	spec := specFor(t, "https://child.example/x", domain.KindVideo)

	proc, err := l.Launch(context.Background(), spec)
	require.NoError(t, err)
	// Let the shell start its sleep child, which holds the stderr pipe.
	time.Sleep(200 * time.Millisecond)

	start := time.Now()
	require.NoError(t, proc.Terminate())

	done := make(chan error, 1)
	go func() { done <- proc.Wait() }()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrProcessFailure)
		assert.Less(t, time.Since(start), 5*time.Second)
	case <-time.After(5 * time.Second):
		t.Fatal("wait blocked on a child after terminate")
	}
}

func TestLaunch_ContextCancelStopsProcessGroup(t *testing.T) {
	l := NewLauncher(writeFakeTool(t))
	spec := specFor(t, "https://child.example/x", domain.KindAudio)

	ctx, cancel := context.WithCancel(context.Background())
	proc, err := l.Launch(ctx, spec)
	require.NoError(t, err)
	time.Sleep(200 * time.Millisecond)
	cancel()

	done := make(chan error, 1)
	go func() { done <- proc.Wait() }()
	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("process group survived context cancellation")
	}
}

func TestLaunch_RejectsBadInput(t *testing.T) {
	l := NewLauncher(writeFakeTool(t))

	spec := specFor(t, "-o /etc/passwd", domain.KindAudio)
	_, err := l.Launch(context.Background(), spec)
	assert.ErrorIs(t, err, ErrInvalidURL)

	spec = specFor(t, "https://example.com", domain.KindAudio)
	spec.Output.StagingPath = ""
	_, err = l.Launch(context.Background(), spec)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestLaunch_MissingBinary(t *testing.T) {
	l := NewLauncher(filepath.Join(t.TempDir(), "does-not-exist"))
	_, err := l.Launch(context.Background(), specFor(t, "https://example.com", domain.KindAudio))
	assert.Error(t, err)
}
