package etl

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailcraft/pos_backend/models"
	"github.com/retailcraft/pos_backend/utils"
)

// summaryAccumulator collects one kind's (Sell or Buy) daily totals while
// folding the day's transactions. All fields start at zero; accumulation is
// commutative, so transaction order does not matter.
type summaryAccumulator struct {
	price                     decimal.Decimal
	count                     int
	returnPrice               decimal.Decimal
	returnCount               int
	wholesalePrice            decimal.Decimal
	lossWholesalePrice        decimal.Decimal
	buyAssessedPrice          decimal.Decimal
	itemCount                 int
	givenPoint                decimal.Decimal
	usedPoint                 decimal.Decimal
	saleDiscountPrice         decimal.Decimal
	discountPrice             decimal.Decimal
	couponDiscountPrice       decimal.Decimal
	productDiscountPrice      decimal.Decimal
	productTotalDiscountPrice decimal.Decimal
	setDealDiscountPrice      decimal.Decimal
	totalDiscountPrice        decimal.Decimal
}

func (a *summaryAccumulator) toDailySummary(storeId int, targetDay time.Time, kind models.TransactionKind) *models.DailySummary {
	return &models.DailySummary{
		StoreId:                   storeId,
		TargetDay:                 targetDay,
		Kind:                      kind,
		Price:                     a.price,
		Count:                     a.count,
		ReturnPrice:               a.returnPrice,
		ReturnCount:               a.returnCount,
		WholesalePrice:            a.wholesalePrice,
		LossWholesalePrice:        a.lossWholesalePrice,
		BuyAssessedPrice:          a.buyAssessedPrice,
		ItemCount:                 a.itemCount,
		GivenPoint:                a.givenPoint,
		UsedPoint:                 a.usedPoint,
		SaleDiscountPrice:         a.saleDiscountPrice,
		DiscountPrice:             a.discountPrice,
		CouponDiscountPrice:       a.couponDiscountPrice,
		ProductDiscountPrice:      a.productDiscountPrice,
		ProductTotalDiscountPrice: a.productTotalDiscountPrice,
		SetDealDiscountPrice:      a.setDealDiscountPrice,
		TotalDiscountPrice:        a.totalDiscountPrice,
	}
}

// foldResult is everything one run writes: the two summary accumulators plus
// the buffered fact and customer-dimension rows.
type foldResult struct {
	sell      summaryAccumulator
	buy       summaryAccumulator
	facts     []*models.DailyProductFact
	customers []*models.TransactionCustomer
}

// foldTransactions reduces the day's completed transactions into summary
// accumulators, fact rows and customer snapshots. It is pure over its inputs
// so the sign handling can be tested without a database.
func foldTransactions(transactions []models.Transaction, storeId int, targetDay time.Time) *foldResult {
	result := &foldResult{}

	for i := range transactions {
		t := &transactions[i]

		factor := 1
		if t.IsReturn {
			factor = -1
		}
		factorDec := decimal.NewFromInt(int64(factor))

		if t.CustomerId != nil && t.Customer != nil {
			result.customers = append(result.customers, &models.TransactionCustomer{
				TransactionId: t.ID,
				CustomerId:    *t.CustomerId,
				FullName:      t.Customer.FullName,
				Address:       utils.FormatCustomerAddress(t.Customer),
				Career:        t.Customer.Career,
				Age:           utils.CustomerAge(t.Customer, targetDay),
				IdKind:        t.IdKind,
				IdNumber:      t.IdNumber,
			})
		}

		acc := &result.sell
		if t.Kind == models.TransactionKindBuy {
			acc = &result.buy
		}

		for j := range t.Carts {
			cart := &t.Carts[j]
			result.facts = append(result.facts, buildProductFact(t, cart, storeId, targetDay, factor))

			lineCount := decimal.NewFromInt(int64(cart.ItemCount))
			if t.Kind == models.TransactionKindSell {
				acc.wholesalePrice = acc.wholesalePrice.Add(factorDec.Mul(cart.WholesaleTotalPrice))
			}
			acc.saleDiscountPrice = acc.saleDiscountPrice.Add(factorDec.Mul(cart.SaleDiscountPrice).Mul(lineCount))
			acc.productDiscountPrice = acc.productDiscountPrice.Add(factorDec.Mul(cart.DiscountPrice).Mul(lineCount))
			acc.productTotalDiscountPrice = acc.productTotalDiscountPrice.Add(factorDec.Mul(cartTotalDiscount(cart)).Mul(lineCount))
			acc.itemCount += factor * cart.ItemCount
		}

		applyTransactionTotals(acc, t)
	}

	return result
}

// applyTransactionTotals applies the transaction-level accumulations,
// branched by kind and then by return flag. Returns book gross amounts into
// return_price/return_count and subtract points and discounts; regular
// transactions add everything.
func applyTransactionTotals(acc *summaryAccumulator, t *models.Transaction) {
	switch {
	case t.Kind == models.TransactionKindSell && !t.IsReturn:
		acc.price = acc.price.Add(t.TotalSalePrice)
		acc.count++
		acc.givenPoint = acc.givenPoint.Add(t.PointAmount)
		acc.usedPoint = acc.usedPoint.Add(t.PointDiscountPrice.Abs())
		acc.couponDiscountPrice = acc.couponDiscountPrice.Add(t.CouponDiscountPrice)
		acc.discountPrice = acc.discountPrice.Add(t.DiscountPrice)
		acc.setDealDiscountPrice = acc.setDealDiscountPrice.Add(setDealTotal(t.SetDealApplications, false))
		acc.totalDiscountPrice = acc.totalDiscountPrice.Add(t.TotalDiscountPrice)

	case t.Kind == models.TransactionKindSell && t.IsReturn:
		acc.returnPrice = acc.returnPrice.Add(t.TotalSalePrice)
		acc.returnCount++
		acc.givenPoint = acc.givenPoint.Sub(t.PointAmount)
		acc.usedPoint = acc.usedPoint.Sub(t.PointDiscountPrice.Abs())
		acc.couponDiscountPrice = acc.couponDiscountPrice.Sub(t.CouponDiscountPrice)
		acc.discountPrice = acc.discountPrice.Sub(t.DiscountPrice)
		acc.setDealDiscountPrice = acc.setDealDiscountPrice.Sub(setDealTotal(t.SetDealApplications, true))
		acc.totalDiscountPrice = acc.totalDiscountPrice.Sub(t.TotalDiscountPrice)

	case t.Kind == models.TransactionKindBuy && !t.IsReturn:
		acc.price = acc.price.Add(t.TotalSalePrice)
		acc.count++
		acc.givenPoint = acc.givenPoint.Add(t.PointAmount)
		acc.discountPrice = acc.discountPrice.Add(t.DiscountPrice)
		acc.couponDiscountPrice = acc.couponDiscountPrice.Add(t.CouponDiscountPrice)
		acc.totalDiscountPrice = acc.totalDiscountPrice.Add(t.TotalDiscountPrice)
		if t.BuyAssessedTotalPrice != nil {
			acc.buyAssessedPrice = acc.buyAssessedPrice.Add(*t.BuyAssessedTotalPrice)
		}

	case t.Kind == models.TransactionKindBuy && t.IsReturn:
		acc.returnPrice = acc.returnPrice.Add(t.TotalSalePrice)
		acc.returnCount++
		acc.givenPoint = acc.givenPoint.Sub(t.PointAmount)
		acc.usedPoint = acc.usedPoint.Sub(t.PointDiscountPrice.Abs())
		acc.discountPrice = acc.discountPrice.Sub(t.DiscountPrice)
		acc.couponDiscountPrice = acc.couponDiscountPrice.Sub(t.CouponDiscountPrice)
		acc.totalDiscountPrice = acc.totalDiscountPrice.Sub(t.TotalDiscountPrice)
	}
}

// setDealTotal sums a transaction's set deal discounts.
//
// Historical quirk: the return branch weights each deal by apply_count, the
// regular branch does not. Months of dashboard history were built on both
// behaviors, so both are kept as-is and pinned by regression tests; align
// them only together with a backfill of the affected summaries.
func setDealTotal(deals []models.SetDealApplication, weighted bool) decimal.Decimal {
	total := decimal.Zero
	for i := range deals {
		d := deals[i].TotalDiscountPrice
		if weighted {
			d = d.Mul(decimal.NewFromInt(int64(deals[i].ApplyCount)))
		}
		total = total.Add(d)
	}
	return total
}

// lossWholesaleTotal sums unit_price * item_count over the wholesale price
// history consumed by the day's finished losses.
func lossWholesaleTotal(histories []models.ProductWholesalePriceHistory) decimal.Decimal {
	total := decimal.Zero
	for i := range histories {
		h := &histories[i]
		total = total.Add(h.UnitPrice.Mul(decimal.NewFromInt(int64(h.ItemCount))))
	}
	return total
}

func cartTotalDiscount(cart *models.TransactionCart) decimal.Decimal {
	if cart.TotalDiscountPrice == nil {
		return decimal.Zero
	}
	return *cart.TotalDiscountPrice
}

// buildProductFact denormalizes one cart line into a fact row. Quantity and
// wholesale cost carry the return sign; the other monetary fields are copied
// as recorded on the line. Missing catalog links degrade to zero/empty
// fields instead of failing the run.
func buildProductFact(t *models.Transaction, cart *models.TransactionCart, storeId int, targetDay time.Time, factor int) *models.DailyProductFact {
	factorDec := decimal.NewFromInt(int64(factor))

	fact := &models.DailyProductFact{
		StoreId:             storeId,
		TargetDay:           targetDay,
		Kind:                t.Kind,
		TransactionId:       t.ID,
		IsReturn:            t.IsReturn,
		FinishedAt:          t.FinishedAt,
		PaymentMethod:       t.PaymentMethod,
		TaxKind:             t.TaxKind,
		ProductId:           cart.ProductId,
		ItemCount:           factor * cart.ItemCount,
		WholesaleTotalPrice: factorDec.Mul(cart.WholesaleTotalPrice),
		SaleId:              cart.SaleId,
		SaleDisplayName:     cart.SaleDisplayName,
		SaleDiscountPrice:   cart.SaleDiscountPrice,
		OriginalUnitPrice:   cart.OriginalUnitPrice,
		UnitPrice:           cart.UnitPrice,
		DiscountPrice:       cart.DiscountPrice,
		TotalDiscountPrice:  cart.TotalDiscountPrice,
		TotalUnitPrice:      cart.TotalUnitPrice,
	}

	p := cart.Product
	if p == nil {
		return fact
	}
	fact.ProductName = p.DisplayName
	fact.ManagementNumber = p.ManagementNumber
	if p.ConditionOption != nil {
		fact.ConditionOptionId = p.ConditionOption.ID
		fact.ConditionOptionName = p.ConditionOption.DisplayName
	}
	if p.Specialty != nil {
		fact.SpecialtyId = p.Specialty.ID
		fact.SpecialtyName = p.Specialty.Name
	}
	if p.Item != nil {
		fact.ItemId = p.Item.ID
		fact.ItemName = p.Item.Name
		fact.ItemRarity = p.Item.Rarity
		fact.ItemModelNo = p.Item.ModelNo
		if p.Item.Genre != nil {
			fact.GenreId = p.Item.Genre.ID
			fact.GenreName = p.Item.Genre.Name
		}
		if p.Item.Category != nil {
			fact.CategoryId = p.Item.Category.ID
			fact.CategoryName = p.Item.Category.Name
		}
	}
	return fact
}
