/*
Copyright © 2025 David Robbins <darobbins85@gmail.com>
*/

package main

import "log"

func main() {
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}
