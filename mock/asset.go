package mock

import "github.com/fwojciec/wprefactor"

var (
	_ wprefactor.AssetCollector = (*AssetCollector)(nil)
	_ wprefactor.AssetFilter    = (*AssetFilter)(nil)
)

// AssetCollector is a mock implementation of wprefactor.AssetCollector.
type AssetCollector struct {
	CollectAssetsFn func(html string) ([]string, error)
}

func (c *AssetCollector) CollectAssets(html string) ([]string, error) {
	return c.CollectAssetsFn(html)
}

// AssetFilter is a mock implementation of wprefactor.AssetFilter.
type AssetFilter struct {
	TestAndAddFn func(asset string) bool
}

func (f *AssetFilter) TestAndAdd(asset string) bool {
	return f.TestAndAddFn(asset)
}
