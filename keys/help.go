package keys

import "sort"

// HelpCategory organizes commands by function
type HelpCategory string

const (
	HelpCategoryNavigation HelpCategory = "Navigation"
	HelpCategoryLaunches   HelpCategory = "Launches"
	HelpCategorySearch     HelpCategory = "Search"
	HelpCategoryOther      HelpCategory = "Other"
	HelpCategoryUncategory HelpCategory = "Uncategorized" // For keys without categories
	HelpCategorySpecial    HelpCategory = "Special"       // For special keys that shouldn't show in main help
)

// categoryOrder is the display order of the help screen.
var categoryOrder = map[HelpCategory]int{
	HelpCategoryNavigation: 1,
	HelpCategoryLaunches:   2,
	HelpCategorySearch:     3,
	HelpCategoryOther:      4,
	HelpCategoryUncategory: 5,
}

// KeyHelpInfo adds extended help information to key bindings
type KeyHelpInfo struct {
	Description string       // Extended description for help text
	Category    HelpCategory // Category for organizing in help screens
}

// KeyHelpMap maps KeyNames to their help information
var KeyHelpMap = map[KeyName]KeyHelpInfo{
	KeyUp:       {Description: "Select the previous launch", Category: HelpCategoryNavigation},
	KeyDown:     {Description: "Select the next launch; at the end, load more", Category: HelpCategoryNavigation},
	KeyPageUp:   {Description: "Scroll up one page", Category: HelpCategoryNavigation},
	KeyPageDown: {Description: "Scroll down one page", Category: HelpCategoryNavigation},
	KeyTop:      {Description: "Jump to the first launch", Category: HelpCategoryNavigation},
	KeyBottom:   {Description: "Jump to the end of the list and load more", Category: HelpCategoryNavigation},

	KeyToggle: {Description: "View or hide the details of the selected launch", Category: HelpCategoryLaunches},
	KeyCopy:   {Description: "Copy the article or video link to the clipboard", Category: HelpCategoryLaunches},

	KeySearch: {Description: "Filter launches by mission name", Category: HelpCategorySearch},
	KeyEsc:    {Description: "Leave the search box, or clear the filter", Category: HelpCategorySearch},

	KeyHelp: {Description: "Show help screen", Category: HelpCategoryOther},
	KeyQuit: {Description: "Quit the application", Category: HelpCategoryOther},

	KeySubmitSearch: {Description: "Apply the search and return to the list", Category: HelpCategorySpecial},
}

// GetKeyHelp returns the help information for a key
func GetKeyHelp(keyName KeyName) KeyHelpInfo {
	info, exists := KeyHelpMap[keyName]
	if !exists {
		// Return default help for unknown keys
		return KeyHelpInfo{
			Description: "No description",
			Category:    HelpCategoryUncategory,
		}
	}
	return info
}

// GetKeysInCategory returns all key bindings in a given category, in
// declaration order.
func GetKeysInCategory(category HelpCategory) []KeyName {
	var keys []KeyName
	for k, info := range KeyHelpMap {
		if info.Category == category {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// GetAllCategories returns all categories that have at least one key, in
// display order.
func GetAllCategories() []HelpCategory {
	categoryMap := make(map[HelpCategory]bool)
	for _, info := range KeyHelpMap {
		categoryMap[info.Category] = true
	}

	categories := make([]HelpCategory, 0, len(categoryMap))
	for category := range categoryMap {
		// Skip special category
		if category != HelpCategorySpecial {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categoryOrder[categories[i]] < categoryOrder[categories[j]]
	})

	return categories
}
