// Package main はアプリケーションのエントリーポイントを提供します。
package main

import "github.com/jonathanmnovak/neo-capstone/cli"

func main() {
	cli.Execute()
}
