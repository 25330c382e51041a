package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"

	"hrapi/internal/config"
)

// ftpStore implements Store against an FTP server. Every method dials its own
// session and quits it on return; no connection is reused across calls. This
// trades connection-setup cost for failure isolation, which is acceptable at
// the request rates of an internal HR tool.
type ftpStore struct {
	addr    string
	user    string
	pass    string
	secure  bool
	timeout time.Duration
}

// NewFTP creates an FTP-backed Store. It validates the configuration but does
// not dial: connectivity problems surface on first use, per call.
func NewFTP(cfg config.FTPConfig) (Store, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("ftp host is required")
	}
	if cfg.User == "" || cfg.Password == "" {
		return nil, fmt.Errorf("ftp credentials are required")
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &ftpStore{
		addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		user:    cfg.User,
		pass:    cfg.Password,
		secure:  cfg.Secure,
		timeout: timeout,
	}, nil
}

// withConn dials, logs in, runs fn, and always quits the session.
func (s *ftpStore) withConn(ctx context.Context, fn func(c *ftp.ServerConn) error) error {
	opts := []ftp.DialOption{
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(s.timeout),
	}
	if s.secure {
		opts = append(opts, ftp.DialWithExplicitTLS(&tls.Config{ServerName: hostOnly(s.addr)}))
	}
	c, err := ftp.Dial(s.addr, opts...)
	if err != nil {
		return fmt.Errorf("ftp dial: %w", err)
	}
	defer c.Quit()

	if err := c.Login(s.user, s.pass); err != nil {
		return fmt.Errorf("ftp login: %w", err)
	}
	return fn(c)
}

// EnsureDir walks the path segment by segment, creating what is missing.
// MKD on an existing directory fails on most servers, so each segment is
// probed with CWD first.
func (s *ftpStore) EnsureDir(ctx context.Context, path string) error {
	return s.withConn(ctx, func(c *ftp.ServerConn) error {
		if err := c.ChangeDir("/"); err != nil {
			return err
		}
		for _, seg := range strings.Split(path, "/") {
			if seg == "" {
				continue
			}
			if err := c.ChangeDir(seg); err == nil {
				continue
			}
			if err := c.MakeDir(seg); err != nil {
				return fmt.Errorf("mkdir %q: %w", seg, err)
			}
			if err := c.ChangeDir(seg); err != nil {
				return fmt.Errorf("chdir %q: %w", seg, err)
			}
		}
		return nil
	})
}

// ListFiles lists file names directly under path. A failed LIST is reported
// as an empty result; session-establishment failures still propagate so the
// caller can distinguish an unreachable store from an empty folder.
func (s *ftpStore) ListFiles(ctx context.Context, path string) ([]string, error) {
	var names []string
	err := s.withConn(ctx, func(c *ftp.ServerConn) error {
		entries, err := c.List(path)
		if err != nil {
			names = []string{}
			return nil
		}
		names = make([]string, 0, len(entries))
		for _, e := range entries {
			if e.Type == ftp.EntryTypeFile {
				names = append(names, e.Name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Upload streams r to path, overwriting an existing file of the same name.
func (s *ftpStore) Upload(ctx context.Context, path string, r io.Reader) error {
	return s.withConn(ctx, func(c *ftp.ServerConn) error {
		if err := c.Stor(path, r); err != nil {
			return fmt.Errorf("ftp stor %q: %w", path, err)
		}
		return nil
	})
}

// Delete removes the file at path.
func (s *ftpStore) Delete(ctx context.Context, path string) error {
	return s.withConn(ctx, func(c *ftp.ServerConn) error {
		if err := c.Delete(path); err != nil {
			return fmt.Errorf("ftp delete %q: %w", path, err)
		}
		return nil
	})
}

func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
