package services

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
)

const partnerFeedHTML = `
<html><body>
  <div class="hotel-card" data-hotel-id="p1">
    <div class="hotel-card__name"> Hotel Colonial </div>
    <div class="hotel-card__city">Quito</div>
    <div class="hotel-card__country">Ecuador</div>
    <div class="hotel-card__price">$ 95.50 / night</div>
    <div class="hotel-card__rating">4.6</div>
    <div class="hotel-card__photo"><img src="/img/colonial.jpg"></div>
  </div>
  <div class="hotel-card" data-hotel-id="p2">
    <div class="hotel-card__name">Playa Azul</div>
    <div class="hotel-card__city">Salinas</div>
    <div class="hotel-card__price">120</div>
  </div>
  <div class="hotel-card">
    <div class="hotel-card__name">Без идентификатора</div>
  </div>
</body></html>`

func TestParseHotelsWithGoquery(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(partnerFeedHTML))
	assert.NoError(t, err)

	hotels := NewPartnerHotelParser().ParseHotelsWithGoquery(doc)
	assert.Len(t, hotels, 2) // карточка без data-hotel-id отбрасывается

	assert.Equal(t, "p1", hotels[0].ID)
	assert.Equal(t, "Hotel Colonial", hotels[0].Name)
	assert.Equal(t, "Quito", hotels[0].City)
	assert.Equal(t, "Ecuador", hotels[0].Country)
	assert.Equal(t, 95.50, hotels[0].Price)
	assert.Equal(t, 4.6, hotels[0].Rating)
	assert.Equal(t, "/img/colonial.jpg", hotels[0].Photo)

	assert.Equal(t, "p2", hotels[1].ID)
	assert.Equal(t, 120.0, hotels[1].Price)
	assert.Equal(t, 0.0, hotels[1].Rating)
}
