package main

import "storefront/cmd/shop/commands"

func main() {
	commands.Execute()
}
