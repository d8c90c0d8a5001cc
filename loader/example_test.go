// SPDX-License-Identifier: EPL-2.0

package loader_test

import (
	"fmt"

	"github.com/ik5/samplebank/catalog"
	"github.com/ik5/samplebank/internal/mediatest"
	"github.com/ik5/samplebank/loader"
)

func Example() {
	cat := catalog.Elements()
	storage := mediatest.New(mediatest.CatalogFolder(cat))
	storage.SetAutoComplete(true)

	l, err := loader.New(storage, cat, loader.DefaultOptions())
	if err != nil {
		panic(err)
	}

	cycles := 1
	for !l.Step() {
		cycles++
	}

	loaded, total := l.Progress()
	fmt.Printf("%v after %d cycles: %d/%d files\n", l.State(), cycles, loaded, total)
	fmt.Println(len(l.SampleData()), len(l.NoiseSample()))
	// Output:
	// complete after 12 cycles: 10/10 files
	// 128013 40963
}
