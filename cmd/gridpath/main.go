// Command gridpath loads a grid scenario and runs A* searches over it.
//
//	gridpath find      --scenario map.yaml [--from x,y] [--to x,y] [--priority exact|truncate]
//	gridpath neighbors --scenario map.yaml --node x,y
//	gridpath regions   --scenario map.yaml [--min-size n]
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
