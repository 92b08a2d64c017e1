package grader

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Bahjat/website-grader/internal/model"
)

const (
	goodLoadTime  = 1000 * time.Millisecond
	fairLoadTime  = 2500 * time.Millisecond
	slowLoadTime  = 4000 * time.Millisecond
	htmlSizeWarn  = 100 * 1024
	htmlSizeError = 200 * 1024

	maxInlineStyleBlocks = 3
	lazyImageThreshold   = 5
)

var (
	styleTagPattern = regexp.MustCompile(`(?i)<style[\s>]`)
	imgTagPattern   = regexp.MustCompile(`(?i)<img[\s/>]`)
	lazyLoadPattern = regexp.MustCompile(`(?i)loading\s*=\s*["']?lazy`)
)

// PerformanceAnalyzer estimates page speed from the fetch timing and raw markup.
var PerformanceAnalyzer = Analyzer{
	Category: model.CategoryPerformance,
	Rules: []Rule{
		performanceLoadTime,
		performanceHTMLSize,
		performanceInlineStyles,
		performanceLazyImages,
	},
}

func performanceLoadTime(in *Input) []Outcome {
	ms := in.LoadTime.Milliseconds()

	switch {
	case in.LoadTime < goodLoadTime:
		return one(pass("Excellent load time", fmt.Sprintf("The page loaded in %dms.", ms)))
	case in.LoadTime < fairLoadTime:
		return one(pass("Good load time", fmt.Sprintf("The page loaded in %dms.", ms)))
	case in.LoadTime < slowLoadTime:
		return one(warn(15, model.ImpactMedium, "Slow load time",
			fmt.Sprintf("The page took %dms to load. Aim for under 2.5 seconds by enabling caching, compression and a CDN.", ms)))
	default:
		return one(fail(25, model.ImpactHigh, "Very slow load time",
			fmt.Sprintf("The page took %dms to load. Visitors start leaving after 3 seconds; investigate server response time and page weight.", ms)))
	}
}

func performanceHTMLSize(in *Input) []Outcome {
	size := len(in.HTML)
	kb := size / 1024

	switch {
	case size < htmlSizeWarn:
		return one(pass("Lean HTML", fmt.Sprintf("The HTML document is %dKB.", kb)))
	case size < htmlSizeError:
		return one(warn(10, model.ImpactMedium, "Large HTML document",
			fmt.Sprintf("The HTML document is %dKB. Move inline data and markup into cached assets to get it under 100KB.", kb)))
	default:
		return one(fail(20, model.ImpactHigh, "Very large HTML document",
			fmt.Sprintf("The HTML document is %dKB. Documents over 200KB delay first render noticeably.", kb)))
	}
}

func performanceInlineStyles(in *Input) []Outcome {
	count := len(styleTagPattern.FindAllStringIndex(in.HTML, -1))
	if count > maxInlineStyleBlocks {
		return one(warn(5, model.ImpactLow, "Many inline style blocks",
			fmt.Sprintf("Found %d <style> blocks. Consolidate them into a cacheable stylesheet.", count)))
	}
	return nil
}

func performanceLazyImages(in *Input) []Outcome {
	images := len(imgTagPattern.FindAllStringIndex(in.HTML, -1))
	lazy := len(lazyLoadPattern.FindAllStringIndex(in.HTML, -1))

	switch {
	case images > lazyImageThreshold && float64(lazy) < float64(images)/2:
		return one(withCode(warn(10, model.ImpactMedium, "Images not lazy loaded",
			fmt.Sprintf("Only %d of %d images use lazy loading. Add loading=\"lazy\" to images below the fold.", lazy, images)),
			`<img src="photo.jpg" alt="..." loading="lazy">`))
	case images > 0:
		return one(pass("Image loading", fmt.Sprintf("%d of %d images use lazy loading.", lazy, images)))
	default:
		return nil
	}
}
