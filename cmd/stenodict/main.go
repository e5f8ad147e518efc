// Command stenodict compiles phonetic stenography dictionaries and
// manages the JSON files they produce.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
