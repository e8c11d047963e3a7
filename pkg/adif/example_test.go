package adif_test

import (
	"context"
	"fmt"

	"github.com/walteh/adif/pkg/adif"
	"gitlab.com/tozd/go/errors"
)

func ExampleProcess() {
	doc := "<EOH>\n<CALL:4>W1AW <N3FJP_StationID:2>A1 <eor>\n"

	res, err := adif.Process(context.Background(), doc, adif.Options{
		Add:    []adif.FieldValue{{Name: "OPERATOR", Value: "KN2D"}},
		Delete: []string{"N3FJP%"},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Print(res.Output)
	fmt.Printf("Added: %d, Deleted: %d\n", res.Stats.Added, res.Stats.Deleted)

	// Output:
	// <EOH>
	// <CALL:4>W1AW <OPERATOR:4>KN2D <eor>
	// Added: 1, Deleted: 1
}

func ExampleProcess_conflict() {
	_, err := adif.Process(context.Background(), "<OPERATOR:4>ABCD<eor>", adif.Options{
		Add: []adif.FieldValue{{Name: "OPERATOR", Value: "KN2D"}},
	})

	var conflict *adif.ConflictError
	if errors.As(err, &conflict) {
		fmt.Printf("record %d, field %s\n", conflict.Record, conflict.Field)
	}

	// Output:
	// record 1, field OPERATOR
}

func ExampleToOneLine() {
	doc := "<EOH>\n<CALL:4>W1AW\n<BAND:3>20m\n<eor>\n"

	fmt.Print(adif.ToOneLine(doc))

	// Output:
	// <EOH>
	// <CALL:4>W1AW <BAND:3>20m <eor>
}
