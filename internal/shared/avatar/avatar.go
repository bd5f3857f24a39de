package avatar

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// resized avatar width; height follows the source aspect ratio
const resizeWidth = 300

type Service struct {
	store  Store
	client *http.Client
	logger *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) *Service {
	l := zap.L().Named("avatar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("avatar.service")
	}
	return &Service{
		store:  store,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: l,
	}
}

// SaveFromURL fetches an image, scales it down to the standard avatar width
// and persists it under a timestamp-derived name to avoid collisions.
// Returns the stored file name.
func (s *Service) SaveFromURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("avatar fetch returned status %d", resp.StatusCode)
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	resized := imaging.Resize(img, resizeWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG); err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}

	name := fmt.Sprintf("%d.jpg", time.Now().Unix())
	if err := s.store.Save(ctx, name, &buf); err != nil {
		return "", err
	}

	s.logger.Debug("avatar stored", zap.String("name", name), zap.String("source", url))
	return name, nil
}

// Replace stores the new avatar after removing the previous file. The delete
// is best-effort; a stale file must not block the new write.
func (s *Service) Replace(ctx context.Context, previous, url string) (string, error) {
	if previous != "" {
		if err := s.store.Delete(ctx, previous); err != nil {
			s.logger.Warn("delete previous avatar failed",
				zap.String("name", previous),
				zap.Error(err),
			)
		}
	}

	return s.SaveFromURL(ctx, url)
}

func (s *Service) Delete(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	return s.store.Delete(ctx, name)
}
