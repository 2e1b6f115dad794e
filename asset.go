package wprefactor

import "strings"

// ContentAssetPrefix is the local directory all rewritten content images
// point into.
const ContentAssetPrefix = "/assets/images/content/"

// IsContentAsset reports whether ref points into ContentAssetPrefix.
func IsContentAsset(ref string) bool {
	return strings.HasPrefix(ref, ContentAssetPrefix) && len(ref) > len(ContentAssetPrefix)
}

// AssetCollector finds local asset references in a migrated document.
type AssetCollector interface {
	// CollectAssets returns content asset paths in document order.
	// Duplicates within one document are removed.
	CollectAssets(html string) ([]string, error)
}

// AssetFilter remembers which assets a run has already reported.
// False positives are acceptable; false negatives are not.
type AssetFilter interface {
	// TestAndAdd reports whether asset may have been added before and
	// adds it. Implementations must be safe for concurrent use.
	TestAndAdd(asset string) bool
}
