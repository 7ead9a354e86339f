package uikitscan

import (
	"sort"
	"strings"
)

// UtilityCategory groups safelist patterns in reports.
type UtilityCategory string

// Utility categories
const (
	CategoryBackground UtilityCategory = "background"
	CategoryText       UtilityCategory = "text"
	CategoryBorder     UtilityCategory = "border"
	CategoryRing       UtilityCategory = "ring"
	CategoryOutline    UtilityCategory = "outline"
	CategorySVG        UtilityCategory = "fill & stroke"
	CategoryOther      UtilityCategory = "other"
)

// categoryOrder is the order categories are printed in
var categoryOrder = []UtilityCategory{
	CategoryBackground,
	CategoryText,
	CategoryBorder,
	CategoryRing,
	CategoryOutline,
	CategorySVG,
	CategoryOther,
}

// utilityCategories maps the leading utility name of a pattern to its category
var utilityCategories = map[string]UtilityCategory{
	"bg":      CategoryBackground,
	"from":    CategoryBackground,
	"via":     CategoryBackground,
	"to":      CategoryBackground,
	"text":    CategoryText,
	"caret":   CategoryText,
	"accent":  CategoryText,
	"border":  CategoryBorder,
	"divide":  CategoryBorder,
	"ring":    CategoryRing,
	"outline": CategoryOutline,
	"fill":    CategorySVG,
	"stroke":  CategorySVG,
}

// categorizePattern derives the category from the utility name of a pattern:
// "border-t-(red)-500" and "border-(red)-500" are both borders.
func categorizePattern(pattern string) UtilityCategory {
	utility, _, _ := strings.Cut(pattern, "-")
	utility = strings.TrimPrefix(utility, "!")

	if cat, ok := utilityCategories[utility]; ok {
		return cat
	}
	if strings.HasPrefix(utility, "ring") {
		return CategoryRing
	}
	return CategoryOther
}

// PatternGroup is the patterns of one category.
type PatternGroup struct {
	Category UtilityCategory
	Patterns []SafelistPatternItem
}

// groupPatterns groups patterns by category, in category order and then pattern order.
func groupPatterns(items []SafelistPatternItem) []PatternGroup {
	byCat := make(map[UtilityCategory][]SafelistPatternItem)
	for _, item := range items {
		cat := categorizePattern(item.Pattern)
		byCat[cat] = append(byCat[cat], item)
	}

	var groups []PatternGroup
	for _, cat := range categoryOrder {
		patterns := byCat[cat]
		if len(patterns) == 0 {
			continue
		}
		sort.SliceStable(patterns, func(i, j int) bool {
			return patterns[i].Pattern < patterns[j].Pattern
		})
		groups = append(groups, PatternGroup{Category: cat, Patterns: patterns})
	}
	return groups
}
