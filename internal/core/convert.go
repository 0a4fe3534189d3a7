package core

import (
	"context"
	"errors"
	"fmt"
	"omemeta/pkg/domain"
	"time"
)

// OperationConvert names the converter in metrics and traces.
const OperationConvert = "convert"

// ConvertStats summarises one conversion.
type ConvertStats struct {
	// Instances counts indexed (Many) instances visited in the source.
	Instances int `json:"instances"`
	// Fields counts scalar and token values written to the destination.
	Fields int `json:"fields"`
	// References counts forward-reference values written to the destination.
	References int `json:"references"`
	// Skipped counts writes the destination rejected as not applicable.
	Skipped int `json:"skipped"`
}

// Converter copies every populated field of one document into another. It
// holds no per-call state; one Converter may serve concurrent conversions of
// independent document pairs.
type Converter struct {
	logger  Logger
	metrics MetricsRecorder
	tracer  Tracer
	now     func() time.Time
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithLogger sets the converter's logger.
func WithLogger(logger Logger) ConverterOption {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the converter's metrics recorder.
func WithMetrics(metrics MetricsRecorder) ConverterOption {
	return func(c *Converter) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// WithTracer sets the converter's tracer.
func WithTracer(tracer Tracer) ConverterOption {
	return func(c *Converter) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// WithClock overrides the time source used for durations.
func WithClock(now func() time.Time) ConverterOption {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}

// NewConverter constructs a converter. Without options it logs, measures and
// traces nothing.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		logger:  noopLogger{},
		metrics: noopMetrics{},
		tracer:  noopTracer{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = NewConverter()

// Convert copies src into dst with the default converter.
func Convert(src domain.MetadataRetrieve, dst domain.MetadataStore) error {
	_, err := defaultConverter.Convert(context.Background(), src, dst)
	return err
}

// Convert walks every root entity kind of src in declaration order and writes
// each populated field to dst. Absent fields and writes dst reports as not
// applicable are skipped; any other destination error stops the walk and is
// returned. Nothing already written is rolled back.
func (c *Converter) Convert(ctx context.Context, src domain.MetadataRetrieve, dst domain.MetadataStore) (stats ConvertStats, err error) {
	if src == nil || dst == nil {
		return stats, errors.New("convert: source and destination are required")
	}
	start := c.now()
	ctx, span := c.tracer.Start(ctx, OperationConvert)
	defer func() {
		span.End(err)
		c.metrics.Observe(ctx, OperationConvert, err == nil, c.now().Sub(start))
	}()

	w := &walker{src: src, dst: dst, stats: &stats}
	for _, root := range domain.Roots() {
		if err = ctx.Err(); err != nil {
			return stats, err
		}
		before := stats
		if err = w.entity(root, nil); err != nil {
			c.logger.Error("conversion aborted", "entity", root.Name, "error", err)
			return stats, err
		}
		if stats.Instances > before.Instances {
			c.logger.Debug("converted entity kind",
				"entity", root.Name,
				"instances", stats.Instances-before.Instances,
				"fields", stats.Fields-before.Fields,
				"references", stats.References-before.References,
				"skipped", stats.Skipped-before.Skipped)
		}
	}
	return stats, nil
}

type walker struct {
	src   domain.MetadataRetrieve
	dst   domain.MetadataStore
	stats *ConvertStats
}

// entity visits every instance of e below the parent index tuple.
func (w *walker) entity(e *domain.Entity, parent []int) error {
	if e.Cardinality == domain.One {
		return w.instance(e, parent)
	}
	n := w.src.Count(e, parent...)
	for i := 0; i < n; i++ {
		idx := appendIndex(parent, i)
		w.stats.Instances++
		if err := w.instance(e, idx); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) instance(e *domain.Entity, idx []int) error {
	fields := e.Fields()
	if e.Polymorphic() {
		tag, err := w.variant(e, idx)
		if err != nil {
			return err
		}
		fields = e.VariantFields(tag)
	}
	for _, f := range fields {
		if f.BackReference {
			continue
		}
		if err := w.field(f, idx); err != nil {
			return err
		}
	}
	for _, child := range e.Children() {
		if err := w.entity(child, idx); err != nil {
			return err
		}
	}
	return nil
}

// variant copies the type tag of a polymorphic instance and returns its
// name. An untagged instance yields "", selecting the base fields only.
func (w *walker) variant(e *domain.Entity, idx []int) (string, error) {
	var (
		tag string
		err error
	)
	switch e {
	case domain.LightSource:
		t, ok := w.src.LightSourceType(idx[0], idx[1])
		if !ok {
			return "", nil
		}
		tag, err = t.String(), w.dst.SetLightSourceType(t, idx[0], idx[1])
	case domain.Shape:
		t, ok := w.src.ShapeType(idx[0], idx[1])
		if !ok {
			return "", nil
		}
		tag, err = t.String(), w.dst.SetShapeType(t, idx[0], idx[1])
	default:
		return "", nil
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotApplicable) {
			w.stats.Skipped++
			return tag, nil
		}
		return "", fmt.Errorf("convert %sType%v: %w", e.Name, idx, err)
	}
	return tag, nil
}

func (w *walker) field(f *domain.Field, idx []int) error {
	if !f.Repeated {
		return w.copy(f, idx)
	}
	n := w.src.RefCount(f, idx...)
	for j := 0; j < n; j++ {
		if err := w.copy(f, appendIndex(idx, j)); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) copy(f *domain.Field, idx []int) error {
	v, ok := w.src.Get(f, idx...)
	if !ok {
		return nil
	}
	if err := w.dst.Set(f, v, idx...); err != nil {
		if errors.Is(err, domain.ErrNotApplicable) {
			w.stats.Skipped++
			return nil
		}
		return fmt.Errorf("convert %s%v: %w", f.Name, idx, err)
	}
	if f.IsReference() {
		w.stats.References++
	} else {
		w.stats.Fields++
	}
	return nil
}

func appendIndex(idx []int, i int) []int {
	out := make([]int, len(idx)+1)
	copy(out, idx)
	out[len(idx)] = i
	return out
}
