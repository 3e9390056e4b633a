package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// FileName is the active log file inside the log directory. Rotated
// backups are named FileName.<timestamp>[.gz].
const FileName = "dumbterm.log"

const backupTimeFormat = "2006-01-02-15-04-05"

// RotateOptions bounds the log directory.
type RotateOptions struct {
	MaxBytes   int64
	MaxAge     time.Duration
	MaxBackups int
	Compress   bool
}

// DefaultRotateOptions keeps three compressed backups of at most 10 MiB for
// a week.
func DefaultRotateOptions() RotateOptions {
	return RotateOptions{
		MaxBytes:   10 << 20,
		MaxAge:     7 * 24 * time.Hour,
		MaxBackups: 3,
		Compress:   true,
	}
}

// Rotator is an io.Writer appending to dir/FileName. When a write would
// exceed MaxBytes the file is moved aside and backups are pruned.
type Rotator struct {
	mu   sync.Mutex
	dir  string
	opts RotateOptions
	file *os.File
	size int64
	now  func() time.Time
}

// NewRotator opens dir/FileName for appending.
func NewRotator(dir string, opts RotateOptions) (*Rotator, error) {
	r := &Rotator{dir: dir, opts: opts, now: time.Now}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file.
func (r *Rotator) Path() string {
	return filepath.Join(r.dir, FileName)
}

func (r *Rotator) open() error {
	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.opts.MaxBytes > 0 && r.size > 0 && r.size+int64(len(p)) > r.opts.MaxBytes {
		if err := r.rotateLocked(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Rotate moves the active file aside now.
func (r *Rotator) Rotate() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rotateLocked()
}

func (r *Rotator) rotateLocked() error {
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: close log file: %v\n", err)
		}
		r.file = nil
	}

	backup := r.Path() + "." + r.now().Format(backupTimeFormat)
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: compress %s: %v\n", backup, err)
		} else if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: remove %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

// prune drops backups older than MaxAge, then the oldest beyond MaxBackups.
// Backup names embed their rotation time, so name order is age order.
func (r *Rotator) prune() {
	backups, err := Backups(r.dir)
	if err != nil {
		return
	}

	var keep []string
	now := r.now()
	for _, path := range backups {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if r.opts.MaxAge > 0 && now.Sub(info.ModTime()) > r.opts.MaxAge {
			removeQuiet(path)
			continue
		}
		keep = append(keep, path)
	}

	if r.opts.MaxBackups <= 0 || len(keep) <= r.opts.MaxBackups {
		return
	}
	for _, path := range keep[:len(keep)-r.opts.MaxBackups] {
		removeQuiet(path)
	}
}

// Close closes the active file.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Backups lists rotated log files in dir, oldest first.
func Backups(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), FileName+".") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	slices.Sort(out)
	return out, nil
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

func removeQuiet(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: remove old log %s: %v\n", path, err)
	}
}
