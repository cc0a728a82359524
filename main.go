//go:build js
// +build js

package main

import "github.com/simukka/arena-blaster/web"

func main() {
	web.Run()
}
