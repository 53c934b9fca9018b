package main

import (
	"github.com/Bct-crypto/reth/components/app"
)

func main() {
	app.App().Run()
}
