package share

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// WriterClipboard "copies" by writing the text to w, e.g. stdout for the CLI.
type WriterClipboard struct {
	W io.Writer
}

func (c WriterClipboard) WriteText(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.W, text)
	return err
}

// BufferClipboard keeps the last copied text so a caller can return it,
// e.g. in an HTTP response.
type BufferClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *BufferClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func (c *BufferClipboard) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// NoticeRecorder collects notices in order.
type NoticeRecorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *NoticeRecorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *NoticeRecorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last returns the most recent notice, if any.
func (r *NoticeRecorder) Last() (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// WriterNotifier prints notices as "Title: Description" lines.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(notice Notice) {
	fmt.Fprintf(n.W, "%s: %s\n", notice.Title, notice.Description)
}
