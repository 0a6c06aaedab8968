package webhook

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Mavwarf/mkicons/internal/assets"
	"github.com/Mavwarf/mkicons/internal/config"
	"github.com/Mavwarf/mkicons/internal/httputil"
	"github.com/Mavwarf/mkicons/internal/notice"
)

// Announce posts the JSON notice for results to the configured URL.
func Announce(cfg config.Webhook, dir string, results []assets.Result) error {
	payload, err := notice.JSON(dir, results)
	if err != nil {
		return fmt.Errorf("webhook: encoding notice: %w", err)
	}
	return Send(cfg.URL, string(payload), cfg.Headers)
}

// Send posts body to the given URL as application/json. Custom headers are
// applied after the default Content-Type, so callers can override it.
// Header values are expanded with os.ExpandEnv to support $VAR secrets.
func Send(url, body string, headers map[string]string) error {
	req, err := http.NewRequest("POST", url, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, os.ExpandEnv(v))
	}

	resp, err := httputil.Client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()

	return httputil.CheckStatus(resp, "webhook")
}
