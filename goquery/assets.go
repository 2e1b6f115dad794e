package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wprefactor"
)

var _ wprefactor.AssetCollector = (*AssetCollector)(nil)

var backgroundURLRe = regexp.MustCompile(`url\(\s*["']?([^"')]+?)["']?\s*\)`)

// AssetCollector lists the content images a migrated page refers to.
type AssetCollector struct{}

// NewAssetCollector creates a new AssetCollector.
func NewAssetCollector() *AssetCollector {
	return &AssetCollector{}
}

// CollectAssets returns content asset paths referenced by img src,
// img/source srcset candidates and inline background-image styles.
// Paths are in document order with duplicates removed.
func (c *AssetCollector) CollectAssets(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wprefactor.Errorf(wprefactor.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var assets []string
	add := func(ref string) {
		ref = strings.TrimSpace(ref)
		if !wprefactor.IsContentAsset(ref) || seen[ref] {
			return
		}
		seen[ref] = true
		assets = append(assets, ref)
	}

	doc.Find("img[src], img[srcset], source[srcset], [style]").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok {
			add(src)
		}
		if srcset, ok := sel.Attr("srcset"); ok {
			for _, candidate := range strings.Split(srcset, ",") {
				if fields := strings.Fields(candidate); len(fields) > 0 {
					add(fields[0])
				}
			}
		}
		if style, ok := sel.Attr("style"); ok && strings.Contains(style, "background") {
			for _, m := range backgroundURLRe.FindAllStringSubmatch(style, -1) {
				add(m[1])
			}
		}
	})

	return assets, nil
}
