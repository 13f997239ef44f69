// Package images downloads, validates and stores page and cover images on
// local disk, in object storage or both.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// ErrValidation marks a payload that will never become valid by retrying:
// wrong content type, oversized body or a client error status.
var ErrValidation = errors.New("image validation failed")

// Mode selects where acquired images are written.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeObject Mode = "object"
	ModeBoth   Mode = "both"
)

const (
	DefaultMaxSize        = 10 << 20
	DefaultMaxRetries     = 3
	DefaultRetryBase      = time.Second
	DefaultAttemptTimeout = 15 * time.Second
)

// Request describes one image to acquire.
type Request struct {
	URL        string
	Dest       string
	Key        string
	Headers    http.Header
	MaxRetries int
	Mode       Mode
	Proxy      string
}

// Config holds acquirer configuration.
type Config struct {
	MaxSize        int64
	RetryBase      time.Duration
	AttemptTimeout time.Duration
}

type Acquirer struct {
	store   ObjectStore
	proxies *ProxyPool
	cfg     Config
	logger  *slog.Logger
}

// NewAcquirer creates an acquirer. store may be nil when only local mode is
// used; proxies may be nil to always connect directly.
func NewAcquirer(cfg Config, store ObjectStore, proxies *ProxyPool, logger *slog.Logger) *Acquirer {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = DefaultRetryBase
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = DefaultAttemptTimeout
	}

	return &Acquirer{
		store:   store,
		proxies: proxies,
		cfg:     cfg,
		logger:  logger.With("component", "images"),
	}
}

// Acquire makes the image available in the requested mode and returns its
// reference: the local path in local mode, the public object URL otherwise.
// Existing files and objects are not downloaded again.
func (a *Acquirer) Acquire(ctx context.Context, req Request) (string, error) {
	if req.Mode == "" {
		req.Mode = ModeLocal
	}
	if req.Mode != ModeLocal && a.store == nil {
		return "", fmt.Errorf("mode %s requires an object store", req.Mode)
	}

	if req.Mode != ModeObject && req.Dest != "" && fileExists(req.Dest) {
		if req.Mode == ModeLocal {
			return req.Dest, nil
		}
		return a.uploadLocal(ctx, req)
	}

	if req.Mode == ModeObject {
		exists, err := a.store.Exists(ctx, req.Key)
		if err != nil {
			return "", fmt.Errorf("check object %s: %w", req.Key, err)
		}
		if exists {
			return a.store.URL(req.Key), nil
		}
	}

	data, contentType, err := a.download(ctx, req)
	if err != nil {
		return "", err
	}

	if req.Mode != ModeObject {
		if err := writeFile(req.Dest, data); err != nil {
			return "", err
		}
		if req.Mode == ModeLocal {
			return req.Dest, nil
		}
	}

	if err := a.store.Put(ctx, req.Key, data, contentType); err != nil {
		return "", fmt.Errorf("upload %s: %w", req.Key, err)
	}

	return a.store.URL(req.Key), nil
}

func (a *Acquirer) uploadLocal(ctx context.Context, req Request) (string, error) {
	data, err := os.ReadFile(req.Dest)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", req.Dest, err)
	}

	contentType, err := a.validate(data, "", int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", req.Dest, err)
	}

	if err := a.store.Put(ctx, req.Key, data, contentType); err != nil {
		return "", fmt.Errorf("upload %s: %w", req.Key, err)
	}

	return a.store.URL(req.Key), nil
}

func (a *Acquirer) download(ctx context.Context, req Request) ([]byte, string, error) {
	if req.URL == "" {
		return nil, "", fmt.Errorf("empty image url: %w", ErrValidation)
	}

	retries := req.MaxRetries
	if retries < 1 {
		retries = DefaultMaxRetries
	}

	var err error
	for attempt := 1; attempt <= retries; attempt++ {
		var (
			data        []byte
			contentType string
		)
		data, contentType, err = a.fetch(ctx, req)
		if err == nil {
			return data, contentType, nil
		}
		if errors.Is(err, ErrValidation) || ctx.Err() != nil {
			break
		}
		if attempt == retries {
			break
		}

		delay := a.cfg.RetryBase * time.Duration(attempt)
		a.logger.Debug("image download failed, retrying",
			"url", req.URL,
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, "", fmt.Errorf("download %s: %w", req.URL, err)
}

func (a *Acquirer) fetch(ctx context.Context, req Request) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.AttemptTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %v: %w", err, ErrValidation)
	}
	for k, vs := range req.Headers {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")

	resp, err := a.proxies.Client(req.Proxy).Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode >= 400 && resp.StatusCode < 500 &&
			resp.StatusCode != http.StatusRequestTimeout && resp.StatusCode != http.StatusTooManyRequests {
			return nil, "", fmt.Errorf("status %d: %w", resp.StatusCode, ErrValidation)
		}
		return nil, "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if resp.ContentLength > a.cfg.MaxSize {
		return nil, "", fmt.Errorf("declared size %d exceeds %d: %w", resp.ContentLength, a.cfg.MaxSize, ErrValidation)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, a.cfg.MaxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}

	contentType, err := a.validate(data, resp.Header.Get("Content-Type"), int64(len(data)))
	if err != nil {
		return nil, "", err
	}

	return data, contentType, nil
}

// validate checks size and content type. The declared type is trusted when it
// is image/*, otherwise the payload is sniffed.
func (a *Acquirer) validate(data []byte, declared string, size int64) (string, error) {
	if size > a.cfg.MaxSize {
		return "", fmt.Errorf("size exceeds %d bytes: %w", a.cfg.MaxSize, ErrValidation)
	}
	if size == 0 {
		return "", fmt.Errorf("empty body: %w", ErrValidation)
	}

	if mt, _, err := mime.ParseMediaType(declared); err == nil && strings.HasPrefix(mt, "image/") {
		return mt, nil
	}

	detected := mimetype.Detect(data)
	if strings.HasPrefix(detected.String(), "image/") {
		return detected.String(), nil
	}

	return "", fmt.Errorf("content type %q (sniffed %q): %w", declared, detected.String(), ErrValidation)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}

func writeFile(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("empty destination path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp := path + ".part"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	return nil
}
