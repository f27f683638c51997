package sdkmodel_test

import (
	"testing"

	"github.com/reoring/sdkmodel"
)

func newGadgetBuilder() sdkmodel.AnyBuilder { return &gadgetBuilder{} }

func TestCatalog(t *testing.T) {
	c, err := sdkmodel.NewCatalog("demo", newGadgetBuilder, newPartBuilder)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Shapes(); len(got) != 2 || got[0] != "Gadget" || got[1] != "Part" {
		t.Fatalf("shapes: %v", got)
	}
	b, err := c.NewBuilder("Part")
	if err != nil {
		t.Fatal(err)
	}
	d, _ := b.Schema().FieldByName("label")
	if err := d.Set(b, "built"); err != nil {
		t.Fatal(err)
	}
	if s := b.BuildObject().String(); s != "Part(Label=built)" {
		t.Fatalf("built: %s", s)
	}

	_, err = c.Schema("Widget")
	iss, ok := sdkmodel.AsIssues(err)
	if !ok || iss[0].Code != sdkmodel.CodeUnknownShape {
		t.Fatalf("unknown shape: %v", err)
	}
}

func TestCatalog_Duplicate(t *testing.T) {
	_, err := sdkmodel.NewCatalog("demo", newPartBuilder, newPartBuilder)
	iss, ok := sdkmodel.AsIssues(err)
	if !ok || iss[0].Code != sdkmodel.CodeDuplicateField || iss[0].Path != "/Part" {
		t.Fatalf("duplicate: %v", err)
	}
}
