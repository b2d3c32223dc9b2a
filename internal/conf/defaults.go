// conf/defaults.go default values for settings
package conf

import "github.com/spf13/viper"

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("input.datadir", "data")
	viper.SetDefault("input.unicodedata", "UnicodeData.txt")
	viper.SetDefault("input.namealiases", "NameAliases.txt")
	viper.SetDefault("input.blocks", "Blocks.txt")
	viper.SetDefault("input.scripts", "Scripts.txt")
	viper.SetDefault("input.eastasianwidth", "EastAsianWidth.txt")
	viper.SetDefault("input.emojidata", "emoji-data.txt")
	viper.SetDefault("input.jis0201", "JIS0201.TXT")
	viper.SetDefault("input.jis0208", "JIS0208.TXT")
	viper.SetDefault("input.unihandir", "Unihan")
	viper.SetDefault("input.cldrannotations", "annotations/en.json")
	viper.SetDefault("input.variationsequences", []string{
		"StandardizedVariants.txt",
		"emoji-variation-sequences.txt",
	})

	viper.SetDefault("output.sqlite.path", "unicode.db")
	viper.SetDefault("output.index.path", "search-index.gob")

	// 500 rows keeps multi-column inserts under SQLite's per-statement
	// parameter limit.
	viper.SetDefault("writer.batchsize", 500)

	viper.SetDefault("search.limit", 50)
	viper.SetDefault("search.overfetch", 3)

	viper.SetDefault("log.enabled", false)
	viper.SetDefault("log.path", "unicode3.log")
}
