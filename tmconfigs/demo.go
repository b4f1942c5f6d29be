package tmconfigs

import (
	"slices"

	"github.com/reusee/turing/configs"
)

// DemoWords are extra words the demo decides with the configured program.
// Lists from every config file are concatenated.
type DemoWords []string

var _ configs.Configurable = DemoWords(nil)

func (DemoWords) ConfigExpr() string {
	return "DemoWords"
}

func (Module) DemoWords(
	loader configs.Loader,
) (ret DemoWords) {
	for words := range configs.All[[]string](loader, "demo_words") {
		ret = append(ret, words...)
	}
	return slices.Clip(ret)
}
