package services

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/utils"

	"github.com/PuerkitoBio/goquery"
)

// PartnerHotelParser парсит HTML-страницу партнёрского прайс-листа отелей
type PartnerHotelParser struct{}

func NewPartnerHotelParser() *PartnerHotelParser {
	return &PartnerHotelParser{}
}

func (p *PartnerHotelParser) ParseURL(url string) ([]*models.Hotel, error) {
	client := &http.Client{}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения страницы: %v", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга HTML: %v", err)
	}

	return p.ParseHotelsWithGoquery(doc), nil
}

func (p *PartnerHotelParser) ParseHotelsWithGoquery(doc *goquery.Document) []*models.Hotel {
	var hotels []*models.Hotel

	doc.Find(".hotel-card").Each(func(i int, s *goquery.Selection) {
		hotel := &models.Hotel{}

		// Идентификатор из data-атрибута карточки
		if id, ok := s.Attr("data-hotel-id"); ok {
			hotel.ID = strings.TrimSpace(id)
		}

		hotel.Name = strings.TrimSpace(s.Find(".hotel-card__name").First().Text())
		hotel.City = strings.TrimSpace(s.Find(".hotel-card__city").First().Text())
		hotel.Country = strings.TrimSpace(s.Find(".hotel-card__country").First().Text())

		// Цена за ночь вида "$ 85.00 / night"
		priceText := s.Find(".hotel-card__price").First().Text()
		hotel.Price = utils.ExtractFirstFloat(priceText)

		ratingText := s.Find(".hotel-card__rating").First().Text()
		hotel.Rating = utils.ExtractFirstFloat(ratingText)

		if photo, ok := s.Find(".hotel-card__photo img").First().Attr("src"); ok {
			hotel.Photo = strings.TrimSpace(photo)
		}

		// Добавляем отель только с идентификатором и названием
		if hotel.ID != "" && hotel.Name != "" {
			hotels = append(hotels, hotel)
		}
	})

	fmt.Printf("Найдено отелей в фиде: %d\n", len(hotels))
	return hotels
}
