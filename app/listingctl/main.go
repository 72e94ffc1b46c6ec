package main

import "github.com/anft-xyz/goapi/app/listingctl/cmd"

func main() {
	cmd.Execute()
}
