package generator

import (
	"atelier/internal/model"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	sizes        = []string{string(model.SizeA4), string(model.SizeA3), string(model.SizeA2), string(model.SizeCustom)}
	mediums      = []string{string(model.MediumPencil), string(model.MediumCharcoal), string(model.MediumDigital)}
	difficulties = []string{string(model.DifficultyEasy), string(model.DifficultyMedium), string(model.DifficultyHard), string(model.DifficultyExtreme)}
	deadlines    = []string{string(model.DeadlineNormal), string(model.DeadlineExpress)}
)

// NewCommissionRequest создает случайную валидную заявку на заказную работу.
// Адрес доставки заполняется целиком либо не заполняется вовсе.
func NewCommissionRequest() model.CommissionRequest {
	person := gofakeit.Person()

	req := model.CommissionRequest{
		Contact: model.Contact{
			Name:  person.FirstName + " " + person.LastName,
			Email: gofakeit.Email(),
			Phone: gofakeit.Phone(),
		},
		Selection: model.Selection{
			Size:       model.Size(gofakeit.RandomString(sizes)),
			Medium:     model.Medium(gofakeit.RandomString(mediums)),
			Difficulty: model.Difficulty(gofakeit.RandomString(difficulties)),
			Deadline:   model.Deadline(gofakeit.RandomString(deadlines)),
		},
		ReferenceImage: gofakeit.URL(),
		Notes:          gofakeit.Sentence(12),
	}

	if req.Selection.Medium != model.MediumDigital && gofakeit.Bool() {
		addr := gofakeit.Address()
		req.RequiresDelivery = true
		req.Shipping = model.Shipping{
			Address:  addr.Street,
			City:     addr.City,
			State:    addr.State,
			Pincode:  gofakeit.Numerify("######"),
			Country:  "India",
			Landmark: gofakeit.Street(),
			Phone:    gofakeit.Phone(),
		}
	}
	return req
}

// NewCheckoutRequest собирает корзину из 1-3 работ из artworkIDs.
func NewCheckoutRequest(artworkIDs []string) model.CheckoutRequest {
	count := gofakeit.Number(1, 3)
	if count > len(artworkIDs) {
		count = len(artworkIDs)
	}

	ids := append([]string(nil), artworkIDs...)
	items := make([]model.CartItem, 0, count)
	for i := 0; i < count; i++ {
		// Частичная перетасовка: каждая работа попадает в корзину не больше одного раза.
		j := gofakeit.Number(i, len(ids)-1)
		ids[i], ids[j] = ids[j], ids[i]
		items = append(items, model.CartItem{ArtworkID: ids[i], Quantity: gofakeit.Number(1, 2)})
	}

	req := model.CheckoutRequest{
		Name:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Items:   items,
		Address: gofakeit.Address().Address,
	}
	if gofakeit.Number(1, 4) == 1 {
		req.CouponCode = "ART2026"
	}
	return req
}
