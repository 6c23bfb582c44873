package main_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	main "github.com/fwojciec/favmeta/cmd/favmeta"
	"github.com/fwojciec/favmeta/goquery"
	"github.com/fwojciec/favmeta/i18n"
	"github.com/fwojciec/favmeta/lookup"
	"github.com/fwojciec/favmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a reading test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newShellDeps(stdin io.Reader, fetch func(ctx context.Context, url string) (string, error)) (*main.Dependencies, *syncBuffer, *syncBuffer) {
	stdout, stderr := &syncBuffer{}, &syncBuffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Service:   lookup.NewService(&mock.Fetcher{FetchFn: fetch}, goquery.NewExtractor()),
		Localizer: i18n.New("en"),
		Examples:  main.DefaultExamples,
	}, stdout, stderr
}

func titleFetch(ctx context.Context, url string) (string, error) {
	return "<title>" + url + "</title>", nil
}

func TestShellCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("looks up examples by number", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newShellDeps(strings.NewReader(":example 2\n:quit\n"), titleFetch)

		err := (&main.ShellCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Page Title: https://stackoverflow.com/")
	})

	t.Run("rejects out of range example", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newShellDeps(strings.NewReader(":example 99\n"), titleFetch)

		require.NoError(t, (&main.ShellCmd{}).Run(deps))
		assert.Contains(t, stderr.String(), "usage: :example 1-6")
	})

	t.Run("switches locale", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newShellDeps(strings.NewReader(":lang zh-CN\nnot a url!!\n"), titleFetch)

		require.NoError(t, (&main.ShellCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "locale: zh")
		assert.Contains(t, stderr.String(), "请输入有效的网址")
	})

	t.Run("empty line asks for input", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newShellDeps(strings.NewReader("\n"), titleFetch)

		require.NoError(t, (&main.ShellCmd{}).Run(deps))
		assert.Contains(t, stderr.String(), "Please enter a URL")
	})

	t.Run("lists examples", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newShellDeps(strings.NewReader(":examples\n"), titleFetch)

		require.NoError(t, (&main.ShellCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "1. GitHub  github.com")
	})

	t.Run("reports unknown command", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newShellDeps(strings.NewReader(":copy\n"), titleFetch)

		require.NoError(t, (&main.ShellCmd{}).Run(deps))
		assert.Contains(t, stderr.String(), "unknown command :copy")
	})

	t.Run("stops reading at quit", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newShellDeps(strings.NewReader(":quit\nexample.com\n"), titleFetch)

		require.NoError(t, (&main.ShellCmd{}).Run(deps))
		assert.Empty(t, stdout.String())
	})

	t.Run("quit announces and waits for the pending lookup", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		fetch := func(ctx context.Context, url string) (string, error) {
			<-release
			return "<title>" + url + "</title>", nil
		}
		pr, pw := io.Pipe()
		deps, stdout, stderr := newShellDeps(pr, fetch)

		done := make(chan error, 1)
		go func() { done <- (&main.ShellCmd{}).Run(deps) }()

		_, err := pw.Write([]byte("slow.test\n:quit\n"))
		require.NoError(t, err)
		require.Eventually(t, func() bool {
			return strings.Contains(stderr.String(), "Fetching...")
		}, 2*time.Second, 10*time.Millisecond)
		assert.Empty(t, stdout.String())

		close(release)
		require.NoError(t, <-done)
		require.NoError(t, pw.Close())

		assert.Contains(t, stdout.String(), "Page Title: https://slow.test/")
	})

	t.Run("quit without a pending lookup prints nothing", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newShellDeps(strings.NewReader(":quit\n"), titleFetch)

		require.NoError(t, (&main.ShellCmd{}).Run(deps))
		assert.NotContains(t, stderr.String(), "Fetching...")
	})

	t.Run("prints only the latest of overlapping lookups", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		fetch := func(ctx context.Context, url string) (string, error) {
			if url == "https://slow.test/" {
				<-release
			}
			return "<title>" + url + "</title>", nil
		}
		pr, pw := io.Pipe()
		deps, stdout, _ := newShellDeps(pr, fetch)

		done := make(chan error, 1)
		go func() { done <- (&main.ShellCmd{}).Run(deps) }()

		_, err := pw.Write([]byte("slow.test\nfast.test\n"))
		require.NoError(t, err)
		require.Eventually(t, func() bool {
			return strings.Contains(stdout.String(), "https://fast.test/")
		}, 2*time.Second, 10*time.Millisecond)

		close(release)
		require.NoError(t, pw.Close())
		require.NoError(t, <-done)

		assert.NotContains(t, stdout.String(), "https://slow.test/")
	})
}
