// Package rod provides a Chrome-based implementation of harvest.Browser
// for listing pages whose article links only exist after client-side
// rendering.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/harvest"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultSettleDelay is the fixed pause after page load that gives
// client-side rendering time to settle. No adaptive polling is done.
const DefaultSettleDelay = 3 * time.Second

// readMoreXPath matches the interactive "read more"-style elements blog
// listings use in place of plain links.
const readMoreXPath = `//*[contains(text(), 'Read more') or contains(text(), 'Read More') or contains(text(), 'Continue reading') or contains(text(), 'Read article') or contains(text(), 'View post')]`

// Ensure Launcher implements harvest.BrowserLauncher at compile time.
var _ harvest.BrowserLauncher = (*Launcher)(nil)

// Launcher creates headless Chrome sessions on demand.
type Launcher struct {
	settle    time.Duration
	userAgent string
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithSettleDelay sets the fixed pause after page loads.
// Defaults to DefaultSettleDelay if not specified.
func WithSettleDelay(d time.Duration) Option {
	return func(l *Launcher) {
		l.settle = d
	}
}

// WithUserAgent overrides the browser's user-agent string.
func WithUserAgent(ua string) Option {
	return func(l *Launcher) {
		l.userAgent = ua
	}
}

// NewLauncher creates a new Launcher.
func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{settle: DefaultSettleDelay}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts a headless Chrome session with stability flags.
// The returned Browser must be closed by the caller.
func (l *Launcher) Launch(ctx context.Context) (harvest.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lnchr := launcher.New().
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("window-size", "1920,1080").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Browser{
		browser:   browser,
		launcher:  lnchr,
		settle:    l.settle,
		userAgent: l.userAgent,
	}, nil
}

// Ensure Browser implements harvest.Browser at compile time.
var _ harvest.Browser = (*Browser)(nil)

// Browser is one live headless Chrome session.
type Browser struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	settle    time.Duration
	userAgent string
}

// Render navigates to the URL, waits for rendering to settle, and returns
// the rendered HTML.
func (b *Browser) Render(ctx context.Context, url string) (string, error) {
	page, err := b.open(ctx, url)
	if err != nil {
		return "", err
	}
	defer page.Close()

	return page.HTML()
}

// DiscoverLinks renders the listing page and collects candidate article
// URLs from read-more elements and a full anchor scan. Failures on
// individual elements are skipped.
func (b *Browser) DiscoverLinks(ctx context.Context, url string, accept func(string) bool) ([]string, error) {
	page, err := b.open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	seen := make(map[string]bool)
	var urls []string
	add := func(u string) {
		if u != "" && !seen[u] && accept(u) {
			seen[u] = true
			urls = append(urls, u)
		}
	}

	b.readMoreLinks(page, url, add)

	anchors, err := page.Elements("a")
	if err == nil {
		for _, anchor := range anchors {
			href, err := anchor.Property("href")
			if err != nil {
				continue
			}
			add(href.Str())
		}
	}

	return urls, nil
}

// readMoreLinks resolves article URLs behind "read more"-style elements:
// the enclosing anchor's href when one exists, else a simulated click
// followed by reading the navigation target and navigating back.
func (b *Browser) readMoreLinks(page *rod.Page, listURL string, add func(string)) {
	elements, err := page.ElementsX(readMoreXPath)
	if err != nil {
		return
	}

	for _, el := range elements {
		anchors, err := el.ElementsX("./ancestor-or-self::a[@href]")
		if err == nil && len(anchors) > 0 {
			if href, err := anchors[0].Property("href"); err == nil {
				add(href.Str())
			}
			continue
		}

		// No enclosing anchor: click and observe where the page goes.
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			continue
		}
		time.Sleep(b.settle)

		if info, err := page.Info(); err == nil && info.URL != listURL {
			add(info.URL)
		}
		if err := page.NavigateBack(); err != nil {
			continue
		}
		_ = page.WaitLoad()
		time.Sleep(b.settle)
	}
}

// open creates a page, applies the user-agent override, navigates, and
// waits for rendering to settle.
func (b *Browser) open(ctx context.Context, url string) (*rod.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)

	if b.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: b.userAgent}); err != nil {
			page.Close()
			return nil, err
		}
	}

	if err := page.Navigate(url); err != nil {
		page.Close()
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, err
	}
	time.Sleep(b.settle)

	return page, nil
}

// Close terminates the browser session and its launcher process.
func (b *Browser) Close() error {
	err := b.browser.Close()
	b.launcher.Kill()
	return err
}
