// Command reportpdf renders a static report page to PDF with headless
// Chrome. It serves the given directory over a local listener, waits for the
// page and its fonts to settle and prints with backgrounds on and no margins
// so the result matches the on-screen report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

func main() {
	var (
		dir     = flag.String("dir", "public", "directory holding the rendered report site")
		entry   = flag.String("entry", "/report.html", "path of the report page inside the site")
		out     = flag.String("out", "report.pdf", "output PDF path")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall render timeout")
	)
	flag.Parse()

	if _, err := os.Stat(*dir); err != nil {
		log.Fatalf("report site directory: %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: http.FileServer(http.Dir(*dir))}
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve report site: %v", err)
		}
	}()
	defer srv.Close()

	url := fmt.Sprintf("http://%s%s", ln.Addr(), *entry)
	log.Printf("rendering %s", url)

	pdf, err := render(url, *timeout)
	if err != nil {
		log.Fatalf("render pdf: %v", err)
	}

	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		log.Fatalf("write pdf: %v", err)
	}
	log.Printf("PDF written to %s (%d bytes)", *out, len(pdf))
}

func render(url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		// Web fonts change layout; print only after they resolve.
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, nil,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
				return p.WithAwaitPromise(true)
			}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("reportpdf: %w", err)
	}
	return pdf, nil
}
