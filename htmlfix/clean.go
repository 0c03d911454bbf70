package htmlfix

import "regexp"

// Script and link tags injected by WordPress and its plugins reference
// files that don't exist in a static export; left in place they cause
// console errors and chunk-loading failures.  The list is fixed, built
// from the plugins seen in real exports (Elementor, Gift Up, core
// wp-includes bundles).
var wordpressTagPatterns = []*regexp.Regexp{
	// inline plugin config blocks
	regexp.MustCompile(`(?is)<script[^>]*id="elementor-pro-frontend-js-before"[^>]*>.*?</script>`),
	regexp.MustCompile(`(?is)<script[^>]*id="elementor-frontend-js-before"[^>]*>.*?</script>`),

	// Gift Up checkout
	regexp.MustCompile(`(?i)<link[^>]*id="giftup-checkout-external-css"[^>]*>`),
	regexp.MustCompile(`(?i)<link[^>]*href="[^"]*gift-up[^"]*"[^>]*>`),
	regexp.MustCompile(`(?i)<script[^>]*src="[^"]*gift-up[^"]*"[^>]*></script>`),

	// WordPress core bundles
	regexp.MustCompile(`(?i)<script[^>]*src="[^"]*wp-includes[^"]*"[^>]*></script>`),
	regexp.MustCompile(`(?i)<link[^>]*href="[^"]*wp-includes[^"]*"[^>]*>`),

	// Elementor dynamic loading
	regexp.MustCompile(`(?i)<script[^>]*src="[^"]*elementor-pro[^"]*"[^>]*></script>`),
	regexp.MustCompile(`(?i)<script[^>]*src="[^"]*elementor[^"]*runtime\.min\.js[^"]*"[^>]*></script>`),
	regexp.MustCompile(`(?i)<script[^>]*src="[^"]*elementor[^"]*webpack[^"]*"[^>]*></script>`),
	regexp.MustCompile(`(?i)<script[^>]*src="[^"]*frontend[^"]*handlers[^"]*"[^>]*></script>`),

	// inline wp.* JavaScript that errors without the WordPress runtime
	regexp.MustCompile(`(?is)<script[^>]*>\s*.*?wp\.i18n\.setLocaleData.*?</script>`),
	regexp.MustCompile(`(?is)<script[^>]*>\s*.*?wp\.apiFetch.*?</script>`),
	regexp.MustCompile(`(?i)<script[^>]*>[^<]*wp-admin[^<]*</script>`),
	regexp.MustCompile(`(?i)<script[^>]*>[^<]*wp-json[^<]*</script>`),
	regexp.MustCompile(`(?i)<script[^>]*>[^<]*wp\.[^<]*</script>`),

	// Elementor-hosted Google Fonts that weren't exported
	regexp.MustCompile(`(?i)<link[^>]*href="[^"]*wp-content/uploads/elementor/google-fonts/[^"]*"[^>]*>`),
}

// CleanWordPressTags strips the known WordPress/plugin tags from a
// single document.  No match is a no-op.
func CleanWordPressTags(content string) string {
	for _, pattern := range wordpressTagPatterns {
		content = pattern.ReplaceAllString(content, "")
	}
	return content
}

// CleanTree runs CleanWordPressTags over every HTML file under root.
func CleanTree(root string) ([]string, error) {
	return RewriteTree(root, func(_ string, content string) string {
		return CleanWordPressTags(content)
	})
}
