package etl

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailcraft/pos_backend/models"
)

// NOTE: These tests are intentionally DB-free. The fold is pure over the
// fetched snapshot, so every sign-handling branch can be pinned here without
// MySQL. End-to-end delete/insert semantics are covered by the gated
// integration tests in dailyCalculate_integration_test.go.

var testDay = time.Date(2026, 8, 31, 0, 0, 0, 0, time.FixedZone("JST", 9*60*60))

const testStoreId = 7

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func assertDec(t *testing.T, name string, got decimal.Decimal, want int64) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %d", name, got.String(), want)
	}
}

func sellTransaction(id int) models.Transaction {
	finished := testDay.Add(10 * time.Hour)
	return models.Transaction{
		ID:         id,
		StoreId:    testStoreId,
		Kind:       models.TransactionKindSell,
		Status:     models.TransactionStatusCompleted,
		FinishedAt: &finished,
	}
}

func buyTransaction(id int) models.Transaction {
	tr := sellTransaction(id)
	tr.Kind = models.TransactionKindBuy
	return tr
}

func TestFoldTransactions_ZeroActivity(t *testing.T) {
	result := foldTransactions(nil, testStoreId, testDay)

	sell := result.sell.toDailySummary(testStoreId, testDay, models.TransactionKindSell)
	buy := result.buy.toDailySummary(testStoreId, testDay, models.TransactionKindBuy)

	if sell.Kind != models.TransactionKindSell || buy.Kind != models.TransactionKindBuy {
		t.Fatalf("summary kinds wrong: %s / %s", sell.Kind, buy.Kind)
	}
	if sell.StoreId != testStoreId || !sell.TargetDay.Equal(testDay) {
		t.Errorf("sell summary key = (%d, %s)", sell.StoreId, sell.TargetDay)
	}
	assertDec(t, "sell.Price", sell.Price, 0)
	assertDec(t, "sell.WholesalePrice", sell.WholesalePrice, 0)
	if sell.Count != 0 || sell.ItemCount != 0 || buy.Count != 0 {
		t.Errorf("zero-activity counts: sell.Count=%d sell.ItemCount=%d buy.Count=%d", sell.Count, sell.ItemCount, buy.Count)
	}
	if len(result.facts) != 0 || len(result.customers) != 0 {
		t.Errorf("zero-activity rows: facts=%d customers=%d", len(result.facts), len(result.customers))
	}
}

func TestFoldTransactions_SellAccumulation(t *testing.T) {
	tr := sellTransaction(1)
	tr.TotalSalePrice = dec(3000)
	tr.DiscountPrice = dec(200)
	tr.CouponDiscountPrice = dec(100)
	tr.TotalDiscountPrice = dec(300)
	tr.PointAmount = dec(30)
	tr.PointDiscountPrice = dec(-50) // stored negative by the register
	tr.Carts = []models.TransactionCart{
		{
			ID: 11, TransactionId: 1, ProductId: 101,
			ItemCount:           2,
			WholesaleTotalPrice: dec(800),
			SaleDiscountPrice:   dec(10),
			DiscountPrice:       dec(5),
			TotalDiscountPrice:  decPtr(15),
		},
		{
			ID: 12, TransactionId: 1, ProductId: 102,
			ItemCount:           1,
			WholesaleTotalPrice: dec(300),
		},
	}

	result := foldTransactions([]models.Transaction{tr}, testStoreId, testDay)
	sell := &result.sell

	assertDec(t, "price", sell.price, 3000)
	if sell.count != 1 {
		t.Errorf("count = %d, want 1", sell.count)
	}
	assertDec(t, "givenPoint", sell.givenPoint, 30)
	assertDec(t, "usedPoint", sell.usedPoint, 50) // absolute value
	assertDec(t, "discountPrice", sell.discountPrice, 200)
	assertDec(t, "couponDiscountPrice", sell.couponDiscountPrice, 100)
	assertDec(t, "totalDiscountPrice", sell.totalDiscountPrice, 300)
	assertDec(t, "wholesalePrice", sell.wholesalePrice, 1100)
	// cart-level discounts are weighted by line quantity
	assertDec(t, "saleDiscountPrice", sell.saleDiscountPrice, 20)
	assertDec(t, "productDiscountPrice", sell.productDiscountPrice, 10)
	assertDec(t, "productTotalDiscountPrice", sell.productTotalDiscountPrice, 30)
	if sell.itemCount != 3 {
		t.Errorf("itemCount = %d, want 3", sell.itemCount)
	}

	buy := &result.buy
	assertDec(t, "buy.price untouched", buy.price, 0)
	if buy.count != 0 || buy.itemCount != 0 {
		t.Errorf("buy side touched: count=%d itemCount=%d", buy.count, buy.itemCount)
	}
}

func TestFoldTransactions_SellReturnSigns(t *testing.T) {
	tr := sellTransaction(2)
	tr.IsReturn = true
	tr.TotalSalePrice = dec(1000)
	tr.DiscountPrice = dec(100)
	tr.PointAmount = dec(50)

	result := foldTransactions([]models.Transaction{tr}, testStoreId, testDay)
	sell := &result.sell

	assertDec(t, "returnPrice", sell.returnPrice, 1000) // unsigned
	if sell.returnCount != 1 {
		t.Errorf("returnCount = %d, want 1", sell.returnCount)
	}
	assertDec(t, "discountPrice", sell.discountPrice, -100)
	assertDec(t, "givenPoint", sell.givenPoint, -50)
	// price/count belong to regular sales only
	assertDec(t, "price", sell.price, 0)
	if sell.count != 0 {
		t.Errorf("count = %d, want 0", sell.count)
	}
}

func TestFoldTransactions_SellReturnCartSigns(t *testing.T) {
	tr := sellTransaction(3)
	tr.IsReturn = true
	tr.Carts = []models.TransactionCart{
		{
			ID: 31, TransactionId: 3, ProductId: 103,
			ItemCount:           2,
			WholesaleTotalPrice: dec(400),
			UnitPrice:           dec(500),
			SaleDiscountPrice:   dec(10),
		},
	}

	result := foldTransactions([]models.Transaction{tr}, testStoreId, testDay)
	sell := &result.sell

	assertDec(t, "wholesalePrice", sell.wholesalePrice, -400)
	assertDec(t, "saleDiscountPrice", sell.saleDiscountPrice, -20)
	if sell.itemCount != -2 {
		t.Errorf("itemCount = %d, want -2", sell.itemCount)
	}

	if len(result.facts) != 1 {
		t.Fatalf("facts = %d, want 1", len(result.facts))
	}
	fact := result.facts[0]
	if fact.ItemCount != -2 {
		t.Errorf("fact.ItemCount = %d, want -2", fact.ItemCount)
	}
	assertDec(t, "fact.WholesaleTotalPrice", fact.WholesaleTotalPrice, -400)
	// only quantity and wholesale cost are sign-flipped on the fact row
	assertDec(t, "fact.UnitPrice", fact.UnitPrice, 500)
	assertDec(t, "fact.SaleDiscountPrice", fact.SaleDiscountPrice, 10)
	if !fact.IsReturn {
		t.Error("fact.IsReturn not set")
	}
}

// The set deal sum is unweighted on the regular branch and weighted by
// apply_count on the return branch. Both behaviors are load-bearing for
// historical aggregates; this test pins the difference.
func TestFoldTransactions_SetDealWeightingAsymmetry(t *testing.T) {
	deals := []models.SetDealApplication{
		{TotalDiscountPrice: dec(100), ApplyCount: 1},
		{TotalDiscountPrice: dec(50), ApplyCount: 3},
	}

	regular := sellTransaction(4)
	regular.SetDealApplications = deals
	result := foldTransactions([]models.Transaction{regular}, testStoreId, testDay)
	assertDec(t, "regular setDealDiscountPrice", result.sell.setDealDiscountPrice, 150)

	ret := sellTransaction(5)
	ret.IsReturn = true
	ret.SetDealApplications = deals
	result = foldTransactions([]models.Transaction{ret}, testStoreId, testDay)
	assertDec(t, "return setDealDiscountPrice", result.sell.setDealDiscountPrice, -250)
}

func TestFoldTransactions_BuyBranches(t *testing.T) {
	buy := buyTransaction(6)
	buy.TotalSalePrice = dec(2000)
	buy.PointAmount = dec(20)
	buy.DiscountPrice = dec(50)
	buy.BuyAssessedTotalPrice = decPtr(1800)
	buy.Carts = []models.TransactionCart{
		{ID: 61, TransactionId: 6, ProductId: 104, ItemCount: 4, WholesaleTotalPrice: dec(1800)},
	}

	result := foldTransactions([]models.Transaction{buy}, testStoreId, testDay)
	acc := &result.buy

	assertDec(t, "price", acc.price, 2000)
	if acc.count != 1 {
		t.Errorf("count = %d, want 1", acc.count)
	}
	assertDec(t, "givenPoint", acc.givenPoint, 20)
	assertDec(t, "discountPrice", acc.discountPrice, 50)
	assertDec(t, "buyAssessedPrice", acc.buyAssessedPrice, 1800)
	// buy-side cost is tracked via buy_assessed_price, not wholesale_price
	assertDec(t, "wholesalePrice", acc.wholesalePrice, 0)
	if acc.itemCount != 4 {
		t.Errorf("itemCount = %d, want 4", acc.itemCount)
	}

	// nil assessment defaults to zero
	noAssess := buyTransaction(7)
	noAssess.TotalSalePrice = dec(500)
	result = foldTransactions([]models.Transaction{noAssess}, testStoreId, testDay)
	assertDec(t, "buyAssessedPrice nil", result.buy.buyAssessedPrice, 0)
	assertDec(t, "price nil-assessment", result.buy.price, 500)
}

func TestFoldTransactions_BuyReturn(t *testing.T) {
	tr := buyTransaction(8)
	tr.IsReturn = true
	tr.TotalSalePrice = dec(700)
	tr.PointAmount = dec(10)
	tr.PointDiscountPrice = dec(-25)
	tr.DiscountPrice = dec(40)
	tr.CouponDiscountPrice = dec(15)
	tr.TotalDiscountPrice = dec(55)
	tr.BuyAssessedTotalPrice = decPtr(600)

	result := foldTransactions([]models.Transaction{tr}, testStoreId, testDay)
	acc := &result.buy

	assertDec(t, "returnPrice", acc.returnPrice, 700)
	if acc.returnCount != 1 {
		t.Errorf("returnCount = %d, want 1", acc.returnCount)
	}
	assertDec(t, "givenPoint", acc.givenPoint, -10)
	assertDec(t, "usedPoint", acc.usedPoint, -25)
	assertDec(t, "discountPrice", acc.discountPrice, -40)
	assertDec(t, "couponDiscountPrice", acc.couponDiscountPrice, -15)
	assertDec(t, "totalDiscountPrice", acc.totalDiscountPrice, -55)
	// assessments never enter the return branch
	assertDec(t, "buyAssessedPrice", acc.buyAssessedPrice, 0)
	assertDec(t, "price", acc.price, 0)
	if acc.count != 0 {
		t.Errorf("count = %d, want 0", acc.count)
	}
}

func TestFoldTransactions_FactRowCount(t *testing.T) {
	t1 := sellTransaction(9)
	t1.Carts = []models.TransactionCart{
		{ID: 91, TransactionId: 9, ProductId: 1, ItemCount: 1},
		{ID: 92, TransactionId: 9, ProductId: 2, ItemCount: 1},
	}
	t2 := sellTransaction(10)
	t2.IsReturn = true
	t2.Carts = []models.TransactionCart{
		{ID: 101, TransactionId: 10, ProductId: 1, ItemCount: 1},
	}
	t3 := buyTransaction(11)
	t3.Carts = []models.TransactionCart{
		{ID: 111, TransactionId: 11, ProductId: 3, ItemCount: 2},
		{ID: 112, TransactionId: 11, ProductId: 3, ItemCount: 2},
	}

	result := foldTransactions([]models.Transaction{t1, t2, t3}, testStoreId, testDay)

	// one row per cart line, returns included, no dedup (same product twice)
	if len(result.facts) != 5 {
		t.Fatalf("facts = %d, want 5", len(result.facts))
	}
	for _, f := range result.facts {
		if f.StoreId != testStoreId || !f.TargetDay.Equal(testDay) {
			t.Errorf("fact key = (%d, %s)", f.StoreId, f.TargetDay)
		}
	}
}

func TestFoldTransactions_OrderIndependent(t *testing.T) {
	a := sellTransaction(12)
	a.TotalSalePrice = dec(100)
	b := sellTransaction(13)
	b.IsReturn = true
	b.TotalSalePrice = dec(40)
	c := buyTransaction(14)
	c.TotalSalePrice = dec(60)

	r1 := foldTransactions([]models.Transaction{a, b, c}, testStoreId, testDay)
	r2 := foldTransactions([]models.Transaction{c, b, a}, testStoreId, testDay)

	if !r1.sell.price.Equal(r2.sell.price) ||
		!r1.sell.returnPrice.Equal(r2.sell.returnPrice) ||
		!r1.buy.price.Equal(r2.buy.price) ||
		r1.sell.count != r2.sell.count {
		t.Error("fold result depends on transaction order")
	}
}

func TestFoldTransactions_CustomerSnapshot(t *testing.T) {
	birth := time.Date(1990, 9, 15, 0, 0, 0, 0, time.UTC)
	customerId := 42
	tr := sellTransaction(15)
	tr.CustomerId = &customerId
	tr.IdKind = "License"
	tr.IdNumber = "A-123"
	tr.Customer = &models.Customer{
		ID:         customerId,
		FullName:   "山田 太郎",
		Career:     "Engineer",
		Prefecture: "東京都",
		City:       "台東区",
		Street:     "上野1-2-3",
		BirthDate:  &birth,
	}

	noCustomer := sellTransaction(16)

	result := foldTransactions([]models.Transaction{tr, noCustomer}, testStoreId, testDay)

	if len(result.customers) != 1 {
		t.Fatalf("customers = %d, want 1", len(result.customers))
	}
	row := result.customers[0]
	if row.TransactionId != 15 || row.CustomerId != 42 {
		t.Errorf("snapshot keys = (%d, %d)", row.TransactionId, row.CustomerId)
	}
	if row.Address != "東京都 台東区 上野1-2-3" {
		t.Errorf("Address = %q", row.Address)
	}
	// birthday (Sep 15) not reached as of Aug 31
	if row.Age != 35 {
		t.Errorf("Age = %d, want 35", row.Age)
	}
	if row.IdKind != "License" || row.IdNumber != "A-123" {
		t.Errorf("id fields = %q %q", row.IdKind, row.IdNumber)
	}
}

func TestLossWholesaleTotal(t *testing.T) {
	histories := []models.ProductWholesalePriceHistory{
		{ResourceType: models.WholesaleResourceTypeLoss, ResourceId: 1, UnitPrice: dec(10), ItemCount: 2},
		{ResourceType: models.WholesaleResourceTypeLoss, ResourceId: 1, UnitPrice: dec(5), ItemCount: 1},
	}
	assertDec(t, "lossWholesaleTotal", lossWholesaleTotal(histories), 25)
	assertDec(t, "lossWholesaleTotal empty", lossWholesaleTotal(nil), 0)
}

func TestBuildProductFact_MissingCatalogLinks(t *testing.T) {
	tr := sellTransaction(17)
	cart := models.TransactionCart{
		ID: 171, TransactionId: 17, ProductId: 200,
		ItemCount: 1,
		Product:   &models.Product{ID: 200, DisplayName: "loose card", Item: nil},
	}

	fact := buildProductFact(&tr, &cart, testStoreId, testDay, 1)

	if fact.ProductName != "loose card" {
		t.Errorf("ProductName = %q", fact.ProductName)
	}
	// broken catalog links degrade to sentinels, never an error
	if fact.ItemId != 0 || fact.GenreId != 0 || fact.CategoryId != 0 {
		t.Errorf("catalog ids = %d %d %d, want zeros", fact.ItemId, fact.GenreId, fact.CategoryId)
	}
	if fact.ItemName != "" || fact.GenreName != "" || fact.CategoryName != "" {
		t.Errorf("catalog names = %q %q %q, want empty", fact.ItemName, fact.GenreName, fact.CategoryName)
	}
}

func TestBuildProductFact_Denormalization(t *testing.T) {
	tr := sellTransaction(18)
	tr.PaymentMethod = "Cash"
	tr.TaxKind = "Inclusive"
	cart := models.TransactionCart{
		ID: 181, TransactionId: 18, ProductId: 201,
		ItemCount: 3,
		Product: &models.Product{
			ID:               201,
			DisplayName:      "booster box",
			ManagementNumber: "MN-0042",
			Item: &models.Item{
				ID: 9, Name: "Booster Box Vol.1", Rarity: "SR", ModelNo: "BB-01",
				Genre:    &models.Genre{ID: 3, Name: "TCG"},
				Category: &models.Category{ID: 5, Name: "Sealed"},
			},
			ConditionOption: &models.ConditionOption{ID: 2, DisplayName: "A"},
			Specialty:       &models.Specialty{ID: 4, Name: "PSA10"},
		},
	}

	fact := buildProductFact(&tr, &cart, testStoreId, testDay, 1)

	if fact.ManagementNumber != "MN-0042" || fact.ItemName != "Booster Box Vol.1" ||
		fact.GenreName != "TCG" || fact.CategoryName != "Sealed" ||
		fact.ConditionOptionName != "A" || fact.SpecialtyName != "PSA10" {
		t.Errorf("denormalized fields wrong: %+v", fact)
	}
	if fact.PaymentMethod != "Cash" || fact.TaxKind != "Inclusive" {
		t.Errorf("transaction fields = %q %q", fact.PaymentMethod, fact.TaxKind)
	}
	if fact.Kind != models.TransactionKindSell {
		t.Errorf("Kind = %s", fact.Kind)
	}
}
