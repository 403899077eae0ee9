package main

import (
	"github.com/jukasdrj/shelfwarmer/cmd"

	// Register format plugins
	_ "github.com/jukasdrj/shelfwarmer/format/booklist"
	_ "github.com/jukasdrj/shelfwarmer/format/cachecsv"
	_ "github.com/jukasdrj/shelfwarmer/format/detailed"
	_ "github.com/jukasdrj/shelfwarmer/format/goodreads"
	_ "github.com/jukasdrj/shelfwarmer/format/simple"
)

func main() {
	cmd.Execute()
}
