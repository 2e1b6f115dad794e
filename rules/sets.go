package rules

import (
	"regexp"

	"github.com/fwojciec/wprefactor"
)

// Rule set names.
const (
	SetImages        = "images"
	SetCloudImages   = "cloud-images"
	SetCloudLinks    = "cloud-links"
	SetWordPressURLs = "wordpress-urls"
	SetTracking      = "tracking"
	SetInlineCSSJS   = "inline-css-js"
	SetWordArtifacts = "word-artifacts"
)

const (
	assets     = wprefactor.ContentAssetPrefix
	imageExt   = `(?:jpg|jpeg|png|svg|gif|webp)`
	cdnUploads = `https://solutionsmkm\.b-cdn\.net/wp-content/uploads/`
	siteHost   = `https://solutionsguide\.mykonicaminolta\.com`
)

// Images rewrites saved-page asset folders, CDN uploads and any other
// WordPress upload URL to the local content image directory.
func Images() *RuleSet {
	return NewRuleSet(SetImages,
		rule("saved-page-assets", `(?i)\./[^/]+_files/([^\s'"]+\.`+imageExt+`)`, assets+"${1}"),
		rule("cdn-uploads", `(?i)`+cdnUploads+`\d+/\d+/([^\s'"]+\.`+imageExt+`)`, assets+"${1}"),
		rule("wp-uploads", `(?i)https?://[^/]+/wp-content/uploads/[^/]+/[^/]+/([^\s'"]+\.`+imageExt+`)`, assets+"${1}"),
	)
}

// CloudImages rewrites assets of a single saved page. folder is the stem of
// the source file whose "<folder>_files" directory holds its assets.
func CloudImages(folder string) *RuleSet {
	return NewRuleSet(SetCloudImages,
		rule("saved-page-assets", `\./`+regexp.QuoteMeta(folder)+`_files/([^"'>\s]+)`, assets+"${1}"),
		rule("cdn-uploads", `(?i)`+cdnUploads+`[^"'>\s]+/([^"/'>\s]+\.(?:jpg|png|svg|webp|gif))`, assets+"${1}"),
		rule("cdn-background",
			`background-image:\s*url\(&quot;`+cdnUploads+`[^&]+/([^&/]+)&quot;\)`,
			`background-image: url("`+assets+`${1}")`),
	)
}

// CloudLinks removes carousel inline styles, hidden-image styles and broken
// site images, and points site links at local anchors.
func CloudLinks() *RuleSet {
	return NewRuleSet(SetCloudLinks,
		rule("owl-stage-style",
			`<div class="owl-stage-outer"><div class="owl-stage" style="[^"]*">`,
			`<div class="owl-stage-outer"><div class="owl-stage">`),
		rule("owl-item-style", `<div class="owl-item active" style="[^"]*">`, `<div class="owl-item active">`),
		rule("slides-style", `<div class="slides" style="[^"]*">`, `<div class="slides">`),
		rule("hidden-image-style", `<img([^>]*) style="display: none;"`, `<img${1}`),
		rule("broken-site-image", `<img src="`+siteHost+`/[^"]*" alt="">`, ``),
		rule("site-fragment-link", siteHost+`/[^"'#]*#`, `#`),
		rule("site-home-link", `href="`+siteHost+`/"`, `href="/"`),
		rule("javascript-void-link", `href="javascript:void\(&#39;&#39;\);"`, `href="#"`),
		rule("blank-lines", `\n\s*\n\s*\n`, "\n\n"),
	)
}

// WordPressURLs makes absolute site URLs root-relative.
func WordPressURLs() *RuleSet {
	return NewRuleSet(SetWordPressURLs,
		rule("site-host", `(?i)`+siteHost, ``),
	)
}

// Tracking removes Google Tag Manager, Google Analytics and BugHerd scripts.
func Tracking() *RuleSet {
	return NewRuleSet(SetTracking,
		rule("gtm", `(?is)<script[^>]*gtm\.js[^>]*>.*?</script>`, ``),
		rule("google-analytics", `(?is)<script[^>]*google-analytics[^>]*>.*?</script>`, ``),
		rule("bugherd", `(?is)<script[^>]*bugherd[^>]*>.*?</script>`, ``),
		rule("bugherd-sidebar", `(?is)<script[^>]*sidebarv2\.js[^>]*>.*?</script>`, ``),
		rule("analytics", `(?is)<script[^>]*analytics[^>]*>.*?</script>`, ``),
	)
}

// InlineCSSJS removes every <style> and <script> element. The page template
// adds back the shared scripts.
func InlineCSSJS() *RuleSet {
	return NewRuleSet(SetInlineCSSJS,
		rule("style", `(?is)<style[^>]*>.*?</style>`, ``),
		rule("script", `(?is)<script[^>]*>.*?</script>`, ``),
	)
}

// WordArtifacts removes markup left behind by pasting from Microsoft Word
// and Office Online (TextRun/EOP spans, data-contrast and data-ccp-props
// attributes, runs of &nbsp;, empty paragraphs).
func WordArtifacts() *RuleSet {
	return NewRuleSet(SetWordArtifacts,
		rule("contrast-span", `<span\s+data-contrast="[^"]*">([^<]*)</span>`, `${1}`),
		rule("ccp-props-span", `<span\s+data-ccp-props="[^"]*">\s*(?:&nbsp;|\s*)\s*</span>`, ``),
		rule("text-run-span",
			`<span\s+class="TextRun\s+SCXW\d+\s+BCX\d+"\s+lang="[^"]*"\s+xml:lang="[^"]*"\s+data-contrast="[^"]*">([^<]+)</span>`,
			`${1}`),
		rule("eop-span", `<span\s+class="EOP\s+SCXW\d+\s+BCX\d+"\s+data-ccp-props="[^"]*">\s*(?:&nbsp;|\s*)\s*</span>`, ``),
		rule("broken-accuriopro-image",
			`<li><img\s+src="`+siteHost+`/graphic-communications/accuriopro-solutions/"\s+alt=""></li>\s*`,
			``),
		rule("nbsp-run", `(?:&nbsp;\s*){2,}`, ` `),
		rule("empty-paragraph", `<p>\s*&nbsp;\s*</p>\s*`, ``),
		rule("empty-ccp-paragraph", `<p>\s*<span\s+data-ccp-props="[^"]*">\s*(?:&nbsp;|\s*)\s*</span>\s*</p>\s*`, ``),
		rule("tracking-pixel",
			`<img\s+(?:loading="lazy"\s+)?(?:decoding="async"\s+)?class="alignnone\s+size-medium\s+wp-image-\d+"\s+src="/assets/images/content/accurioprocloudeye\.svg"\s+alt=""\s+width="1"\s+height="1">`,
			``),
		rule("left-aligned-paragraph", `<p\s+style="text-align:\s*left">`, `<p>`),
	)
}
