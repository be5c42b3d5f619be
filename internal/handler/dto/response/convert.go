package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// money is rendered with two decimals so clients never see float rounding
var moneyConverters = []copier.TypeConverter{
	{
		SrcType: decimal.Decimal{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(decimal.Decimal).StringFixed(2), nil
		},
	},
	{
		SrcType: &decimal.Decimal{},
		DstType: new(string),
		Fn: func(src any) (any, error) {
			d := src.(*decimal.Decimal)
			if d == nil {
				return (*string)(nil), nil
			}
			s := d.StringFixed(2)
			return &s, nil
		},
	},
}

func copyView(to, from any) {
	// shapes are fixed at compile time; a failure here is a programming error
	if err := copier.CopyWithOption(to, from, copier.Option{Converters: moneyConverters, DeepCopy: true}); err != nil {
		panic("response: " + err.Error())
	}
}
