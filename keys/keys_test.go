package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryMappedKeyHasBinding(t *testing.T) {
	for str, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		if !ok {
			t.Errorf("key %q maps to %d which has no binding", str, name)
			continue
		}
		assert.Contains(t, binding.Keys(), str, "binding for %q should list it", str)
	}
}

func TestEveryBindingHasHelp(t *testing.T) {
	for name := range GlobalkeyBindings {
		info := GetKeyHelp(name)
		assert.NotEqual(t, HelpCategoryUncategory, info.Category, "key %d has no help entry", name)
	}
}

func TestGetAllCategoriesOrder(t *testing.T) {
	assert.Equal(t, []HelpCategory{
		HelpCategoryNavigation,
		HelpCategoryLaunches,
		HelpCategorySearch,
		HelpCategoryOther,
	}, GetAllCategories())
}

func TestGetKeysInCategory(t *testing.T) {
	assert.Equal(t, []KeyName{KeyToggle, KeyCopy}, GetKeysInCategory(HelpCategoryLaunches))
	assert.Empty(t, GetKeysInCategory(HelpCategoryUncategory))
}

func TestFooterKeyMap(t *testing.T) {
	km := FooterKeyMap{}
	assert.Len(t, km.ShortHelp(), 6)
	assert.Len(t, km.FullHelp(), 3)
}
