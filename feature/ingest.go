package feature

import (
	"fmt"

	"github.com/gridtopo/gridtopo/geom"
)

// Record is the transport-agnostic shape a RecordSource yields: one raw
// geographic record before it is validated and assigned a stable id. CSV and
// GeoJSON decoding are out of scope for this core (see the ambient
// ingestion notes); RecordSource is the seam a decoder plugs into.
type Record struct {
	Layer      string
	Geometry   geom.Geometry
	Attributes Attributes
}

// RecordSource yields Records for a single layer in a stable order; ordinals
// for Feature IDs are assigned by that order, starting at zero.
type RecordSource interface {
	Layer() string
	Records() ([]Record, error)
}

// Diagnostic records one dropped record during LoadAll, with the reason.
type Diagnostic struct {
	Layer   string
	Ordinal int
	Reason  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s_%d: %v", d.Layer, d.Ordinal, d.Reason)
}

// LoadAll reads every source in order, builds a Feature per valid Record,
// and adds it to store. Records whose geometry is degenerate (a LineString
// with fewer than two coordinates, or a Point/LineString failing Valid) are
// dropped rather than failing the whole load; each drop is reported as a
// Diagnostic so the caller can log or surface it without aborting ingest.
func LoadAll(store *Store, sources []RecordSource, proj geom.Projector) ([]Diagnostic, error) {
	var diags []Diagnostic

	for _, src := range sources {
		records, err := src.Records()
		if err != nil {
			return diags, fmt.Errorf("feature: loading layer %s: %w", src.Layer(), err)
		}

		for ordinal, rec := range records {
			if !rec.Geometry.Valid() {
				diags = append(diags, Diagnostic{Layer: rec.Layer, Ordinal: ordinal, Reason: ErrInvalidGeometry})
				continue
			}

			f := &Feature{
				ID:         ID2(rec.Layer, ordinal),
				Layer:      rec.Layer,
				WGS84:      rec.Geometry,
				Metric:     proj.ProjectGeometry(rec.Geometry),
				Attributes: rec.Attributes,
			}
			if err := store.Add(f); err != nil {
				diags = append(diags, Diagnostic{Layer: rec.Layer, Ordinal: ordinal, Reason: err})
				continue
			}
		}
	}

	return diags, nil
}
