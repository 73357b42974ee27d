package ecf

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rezonia/alanube-ecf/internal/dgii"
	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// Limits of a cancellation batch
const (
	MaxCancellationItems  = 10
	MaxCancellationRanges = 10000
	maxCancelledQuantity  = 9999999999
)

// CancellationHeaderSchema is the batch header <Encabezado>
var CancellationHeaderSchema = form.MustSchema("CancellationHeader", []*form.Field{
	form.RNC("rncSender", "RncEmisor", form.Required()),
	form.Int("cancelledEncfQuantity", "CantidadeNCFAnulados", form.Required(), form.Range(1, maxCancelledQuantity)),
})

// CancellationRangeSchema is a contiguous run of voided sequences of one
// series and type <TablaRangoSecuenciasAnuladaseNCF>
var CancellationRangeSchema = form.MustSchema("CancellationRange", []*form.Field{
	form.NCF("encfFrom", "SecuenciaeNCFDesde", form.Required()),
	form.NCF("encfUntil", "SecuenciaeNCFHasta",
		form.Required(),
		form.Check(form.RuleWith("ncf_range", func(v string, ctx *form.Context) (string, error) {
			if _, err := dgii.CountSequence(ctx.String("encfFrom"), v); err != nil {
				return "", err
			}
			return v, nil
		}, "encfFrom")),
	),
})

// CancellationItemSchema groups the ranges of one e-CF type <Anulacion>
var CancellationItemSchema = form.MustSchema("CancellationItem", []*form.Field{
	form.Int("lineNumber", "NoLinea", form.Required(), form.Range(1, MaxCancellationItems)),
	form.Int("ecfType", "TipoeCF",
		form.Required(),
		form.Range(31, 47),
		form.IntChoices(dgii.ElectronicTypeCodes()...),
	),
	form.ListOf("rangeCancelledEnfc", "TablaRangoSecuenciasAnuladaseNCF", CancellationRangeSchema,
		form.Required(),
		form.MinLength(1),
		form.MaxLength(MaxCancellationRanges),
		form.Check(form.RuleWith("ncf_type", checkRangeTypes, "ecfType")),
	),
	form.Int("cancelledEncfQuantity", "CantidadeNCFAnulados",
		form.Required(),
		form.Range(1, maxCancelledQuantity),
		form.Check(form.RuleWith("cancelled_quantity", checkItemQuantity, "rangeCancelledEnfc")),
	),
})

// CancellationSchema voids unused NCF ranges
var CancellationSchema = form.MustSchema("Cancellation", []*form.Field{
	form.Nested("header", "Encabezado", CancellationHeaderSchema, form.Required()),
	form.ListOf("cancellations", "Anulacion", CancellationItemSchema,
		form.Required(),
		form.MinLength(1),
		form.MaxLength(MaxCancellationItems),
	),
}, form.WithValidate(validateCancellation))

func checkRangeTypes(ranges []*form.Form, ctx *form.Context) ([]*form.Form, error) {
	want := model.DocumentType(ctx.Int("ecfType"))
	for i, r := range ranges {
		got, err := dgii.DocumentTypeOf(r.String("encfFrom"))
		if err != nil {
			return nil, err
		}
		if got != want {
			return nil, ctx.Errorf("ncf_type", "range %d is of type %s, item declares %s", i, got.Code(), want.Code())
		}
	}
	return ranges, nil
}

func checkItemQuantity(v int64, ctx *form.Context) (int64, error) {
	counted, err := RangesQuantity(ctx.Forms("rangeCancelledEnfc"))
	if err != nil {
		return 0, err
	}
	if v != counted {
		return 0, ctx.Errorf("cancelled_quantity", "declared %d cancelled e-NCF, ranges hold %d", v, counted)
	}
	return v, nil
}

func validateCancellation(f *form.Form) error {
	declared := f.Form("header").Int("cancelledEncfQuantity")
	summed := lo.SumBy(f.Forms("cancellations"), func(item *form.Form) int64 {
		return item.Int("cancelledEncfQuantity")
	})
	if declared != summed {
		return model.NewValidationError("header.cancelledEncfQuantity", declared, "cancelled_quantity",
			fmt.Sprintf("header declares %d cancelled e-NCF, items hold %d", declared, summed))
	}
	return nil
}

// RangesQuantity counts the sequences covered by cancellation ranges
func RangesQuantity(ranges []*form.Form) (int64, error) {
	var total int64
	for _, r := range ranges {
		n, err := dgii.CountSequence(r.String("encfFrom"), r.String("encfUntil"))
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// Range is an inclusive NCF range
type Range struct {
	From  string
	Until string
}

// NewSimpleCancellation builds a cancellation with one item per range,
// deriving every count from the ranges.
func NewSimpleCancellation(rnc any, ranges ...Range) (*Cancellation, error) {
	if len(ranges) == 0 {
		return nil, model.NewValidationError("cancellations", nil, "min_length", "at least one range is required")
	}
	if len(ranges) > MaxCancellationItems {
		return nil, model.NewValidationError("cancellations", len(ranges), "max_length",
			fmt.Sprintf("at most %d ranges fit in one cancellation", MaxCancellationItems))
	}

	items := make([]*form.Form, 0, len(ranges))
	var total int64
	for i, r := range ranges {
		count, err := dgii.CountSequence(r.From, r.Until)
		if err != nil {
			return nil, err
		}
		docType, err := dgii.DocumentTypeOf(r.From)
		if err != nil {
			return nil, err
		}
		rng, err := CancellationRangeSchema.New(form.Values{"encfFrom": r.From, "encfUntil": r.Until})
		if err != nil {
			return nil, err
		}
		item, err := CancellationItemSchema.New(form.Values{
			"lineNumber":            i + 1,
			"ecfType":               int64(docType),
			"rangeCancelledEnfc":    []*form.Form{rng},
			"cancelledEncfQuantity": count,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		total += count
	}

	header, err := CancellationHeaderSchema.New(form.Values{"rncSender": rnc, "cancelledEncfQuantity": total})
	if err != nil {
		return nil, err
	}
	return NewCancellation(form.Values{"header": header, "cancellations": items})
}
