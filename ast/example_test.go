// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/creachadair/wjson/ast"
	"github.com/creachadair/wjson/ast/cursor"
)

func ExamplePrint() {
	root := ast.NewContainer()
	root.AppendString("Key1", "Val1")
	root.AppendNumber("Key2", 32)
	root.AppendBool("Key3", true)

	nested := ast.NewContainer()
	nested.AppendString("Nested1", "NestedVal1")
	nested.AppendString("Nested2", "NestedVal2")

	list := ast.NewContainer()
	list.PushString("ListVal1")
	list.PushString("ListVal2")

	root.AppendList("ListKey", list)
	root.AppendObject("Nest!", nested)

	if err := ast.Print(os.Stdout, root, 0); err != nil {
		log.Fatalf("Print: %v", err)
	}
	// Output:
	// {
	// 	"Key1" : "Val1",
	// 	"Key2" : 32.000000,
	// 	"Key3" : true,
	// 	"ListKey" : [
	// 		"ListVal1",
	// 		"ListVal2"
	// 	],
	// 	"Nest!" : {
	// 		"Nested1" : "NestedVal1",
	// 		"Nested2" : "NestedVal2"
	// 	}
	// }
}

func ExampleParse() {
	const input = `config: {"name": "demo", "ports": [80, null, 443], "debug": null, "tls": {"on": true}}`

	root, err := ast.Parse(strings.NewReader(input))
	if err != nil {
		log.Fatalf("Parse: %v", err)
	}
	for n := range root.Entries() {
		fmt.Printf("%s: %v\n", n.Key(), n.Kind())
	}

	port, err := cursor.Path[ast.Number](ast.Object{Container: root}, "ports", -1)
	if err != nil {
		log.Fatalf("Path: %v", err)
	}
	fmt.Println("last port:", port)
	// Output:
	// name: string
	// ports: list
	// debug: string
	// tls: object
	// last port: 443
}
