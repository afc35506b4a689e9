package express

import "testing"

func TestLoaderParsesSimpleEntity(t *testing.T) {
	src := []byte(`DATA;
#1=IFCCARTESIANPOINT('',(1.,2.,3.));
#2=IFCDIRECTION('',(0.,0.,1.));
ENDSEC;`)

	l, err := NewLoader(src)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	lineID := l.ExpressIDToLineID(1)
	line := l.GetLine(lineID)
	if line.ExpressID != 1 || line.IfcType != IfcCartesianPoint {
		t.Fatalf("unexpected line: %+v", line)
	}

	l.MoveToArgumentOffset(line, 1)
	coords := l.GetSetArgument()
	if len(coords) != 3 {
		t.Fatalf("expected 3 coords, got %d", len(coords))
	}
	want := []float64{1, 2, 3}
	for i, off := range coords {
		got := l.GetDoubleArgumentAt(off)
		if got != want[i] {
			t.Errorf("coord %d: got %v, want %v", i, got, want[i])
		}
	}
}

func TestLoaderGetExpressIDsWithType(t *testing.T) {
	src := []byte(`DATA;
#1=IFCWALL('',#2,#3);
#4=IFCWALL('',#5,#6);
#7=IFCSLAB('',#8,#9);
ENDSEC;`)
	l, err := NewLoader(src)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	walls := l.GetExpressIDsWithType(IfcWallTestAlias)
	if len(walls) != 2 {
		t.Fatalf("expected 2 walls, got %d: %v", len(walls), walls)
	}
}

// IfcWallTestAlias avoids depending on a schema constant this package
// doesn't export for IFCWALL (only IsIfcElement is part of the public
// contract); the literal matches schema.go's ifcElementTypes key.
const IfcWallTestAlias = "IFCWALL"

func TestLoaderCursorDiscipline(t *testing.T) {
	src := []byte(`DATA;
#1=IFCLOCALPLACEMENT($,#2);
ENDSEC;`)
	l, err := NewLoader(src)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	line := l.GetLine(l.ExpressIDToLineID(1))
	l.MoveToArgumentOffset(line, 0)
	tt := l.GetTokenType()
	if tt != Unset {
		t.Fatalf("expected Unset token, got %v", tt)
	}
	l.MoveToArgumentOffset(line, 1)
	tt = l.GetTokenType()
	if tt != REF {
		t.Fatalf("expected REF token, got %v", tt)
	}
	l.Reverse()
	ref := l.GetRefArgument()
	if ref != 2 {
		t.Fatalf("expected ref 2, got %d", ref)
	}
}

func TestParseTrimSelectTokenShape(t *testing.T) {
	src := []byte(`DATA;
#1=IFCTRIMMEDCURVE(#2,(IFCPARAMETERVALUE(0.)),(IFCPARAMETERVALUE(90.)),.T.,.PARAMETER.);
ENDSEC;`)
	l, err := NewLoader(src)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	line := l.GetLine(l.ExpressIDToLineID(1))
	l.MoveToArgumentOffset(line, 1)
	trim1 := l.GetSetArgument()
	if len(trim1) != 2 {
		t.Fatalf("expected trim set to flatten to 2 tape offsets, got %d", len(trim1))
	}
	if got := l.GetStringArgumentAt(trim1[0]); got != "IFCPARAMETERVALUE" {
		t.Errorf("expected type name IFCPARAMETERVALUE, got %q", got)
	}
	if got := l.GetDoubleArgumentAt(trim1[1]); got != 0 {
		t.Errorf("expected param 0, got %v", got)
	}
}
