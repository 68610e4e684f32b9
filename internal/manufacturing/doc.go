// Package manufacturing renders the "Manufacturing Capabilities" marketing
// section: a header, an index strip of capability markers, a grid of
// technical-styled capability cards and a call to action.
//
// # Data Flow
//
// Rendering is one-way and side-effect free:
//
//	Props ──WithDefaults──▶ Props ──BuildView(now)──▶ View ──▶ markup
//
// Props carries caller configuration. Every field is optional. View holds
// the derived values (current year, icon lookups, marker offsets, reference
// strings) and is rebuilt on every render, never stored.
//
// # Derived Values
//
//   - Marker offset for position i: (i+1)*25 - i*5 percent. The formula is
//     fixed and does not adapt to the number of capabilities.
//   - Feature icon for feature i: the fixed four-icon sequence indexed by
//     i mod 4.
//   - Capability icon: looked up by id (CAP-01, CAP-02, CAP-03); unknown ids
//     render no icon.
//   - References: "REF: {company}-CAP-{year}", "DOC.{company}.CAP.{year}" and
//     per card "SYS.VER.{year}.{position}".
//
// # Usage Example
//
//	r := manufacturing.NewRenderer()
//	if err := r.Render(os.Stdout, manufacturing.Props{CompanyName: "ACME"}); err != nil {
//	    return err
//	}
//
// Tests pin the year with WithClock:
//
//	r := manufacturing.NewRenderer(manufacturing.WithClock(func() time.Time {
//	    return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
//	}))
package manufacturing
