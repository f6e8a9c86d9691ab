package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bst/Printer"
	"github.com/g-m-twostay/go-bst/Sorts"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/sirupsen/logrus"
)

var reference = []int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324}

var (
	sorterName = flag.String("sorter", "merge", "sort and dedup implementation: "+strings.Join(Sorts.Names(), ", "))
	inserts    = flag.String("insert", "", "comma separated values to insert after building")
	deletes    = flag.String("delete", "", "comma separated values to delete after inserting")
	verbose    = flag.Bool("v", false, "debug logging")
)

var log = logrus.New()

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [value ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(); err != nil {
		log.WithError(err).Fatal("bstdemo failed")
	}
}

func run() error {
	sd, ok := Sorts.ByName[int](*sorterName)
	if !ok {
		return fmt.Errorf("unknown sorter %q", *sorterName)
	}
	vals := reference
	if flag.NArg() > 0 {
		var err error
		if vals, err = parseInts(flag.Args()); err != nil {
			return err
		}
	}
	tree := Trees.BuildBST(vals, sd)
	log.WithFields(logrus.Fields{"sorter": *sorterName, "input": len(vals), "size": tree.Size()}).Debug("built tree")

	ins, err := parseList(*inserts)
	if err != nil {
		return fmt.Errorf("-insert: %w", err)
	}
	for _, v := range ins {
		if err := tree.Insert(v); err != nil {
			log.WithField("value", v).Warn(err)
			continue
		}
		log.WithField("value", v).Debug("inserted")
	}
	dels, err := parseList(*deletes)
	if err != nil {
		return fmt.Errorf("-delete: %w", err)
	}
	for _, v := range dels {
		if err := tree.Delete(v); err != nil {
			log.WithField("value", v).Warn(err)
			continue
		}
		log.WithField("value", v).Debug("deleted")
	}

	if err := Printer.Fprint(os.Stdout, tree.Root()); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("level-order:", tree.LevelOrder(nil))
	fmt.Println("in-order:   ", tree.InOrder(nil))
	fmt.Println("pre-order:  ", tree.PreOrder(nil))
	fmt.Println("post-order: ", tree.PostOrder(nil))
	fmt.Println("height:     ", tree.Height())
	return nil
}

func parseList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	return parseInts(strings.Split(s, ","))
}

func parseInts(fields []string) ([]int, error) {
	r := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		r = append(r, v)
	}
	return r, nil
}
