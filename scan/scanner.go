// Copyright (C) 2025 MapleRisk Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package scan implements the website quick-scan: fetch a business website
// once, extract AI-tool and data-handling signals from its markup, and map
// them onto a draft business profile for manual completion.
package scan

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/maplerisk/maplerisk/dtos"
	"golang.org/x/net/html"
)

const defaultTimeout = 15 * time.Second

type Scanner struct {
	client *http.Client
}

func NewScanner(timeout time.Duration) *Scanner {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Scanner{
		client: &http.Client{Timeout: timeout},
	}
}

// Scan fetches the page exactly once. Any failure is returned to the caller,
// retrying is deliberately not done here.
func (s *Scanner) Scan(ctx context.Context, rawURL string) (dtos.ScanResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return dtos.ScanResult{}, err
	}
	req.Header.Set("User-Agent", "maplerisk-scanner/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return dtos.ScanResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return dtos.ScanResult{}, fmt.Errorf("scan of %s returned status %d", rawURL, resp.StatusCode)
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return dtos.ScanResult{}, err
	}

	result := Extract(root)
	result.URL = rawURL
	return result, nil
}

// Extract walks the parsed document and collects every signal the transform
// knows how to map. Exported so tests and the CLI can run it on local markup.
func Extract(root *html.Node) dtos.ScanResult {
	var title string
	var siteName string
	var text strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if n.FirstChild != nil && title == "" {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var property, content string
				for _, attr := range n.Attr {
					switch attr.Key {
					case "property", "name":
						property = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if property == "og:site_name" && content != "" {
					siteName = strings.TrimSpace(content)
				}
			case "a":
				for _, attr := range n.Attr {
					if attr.Key == "href" {
						text.WriteString(" ")
						text.WriteString(attr.Val)
					}
				}
			}
		case html.TextNode:
			text.WriteString(" ")
			text.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	corpus := strings.ToLower(text.String())

	result := dtos.ScanResult{
		BusinessName:          businessName(siteName, title),
		IndustryID:            detectIndustry(corpus),
		ProvinceCode:          detectProvince(corpus),
		DetectedAITools:       detectTools(corpus),
		DetectedDataTypes:     detectDataTypes(corpus),
		MentionsPrivacyPolicy: strings.Contains(corpus, "privacy policy") || strings.Contains(corpus, "politique de confidentialit"),
		MentionsConsent:       strings.Contains(corpus, "consent") || strings.Contains(corpus, "consentement"),
		MentionsPIPEDA:        strings.Contains(corpus, "pipeda"),
	}
	return result
}

func businessName(siteName, title string) string {
	if siteName != "" {
		return siteName
	}
	// strip common title suffixes like "Acme Dental | Home"
	for _, sep := range []string{" | ", " - ", " – "} {
		if idx := strings.Index(title, sep); idx > 0 {
			return strings.TrimSpace(title[:idx])
		}
	}
	return strings.TrimSpace(title)
}
