package usecase

import "github.com/shopspring/decimal"

var decimalOne = decimal.NewFromInt(1)
