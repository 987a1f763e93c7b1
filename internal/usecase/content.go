package usecase

import "go-studio-backend/internal/domain"

type contentUsecase struct{}

// NewContentUsecase serves the static landing-page content.
func NewContentUsecase() domain.ContentUsecase {
	return &contentUsecase{}
}

// Pricing and FAQ data mirror the published landing page. Edits here ship
// with a deploy; there is no CMS behind the marketing site.
var pricingPackages = []domain.PricingPackage{
	{
		Name:     "Старт",
		Price:    "от 19 900 ₽",
		Tagline:  "Идеально для начинающих",
		Features: []string{"Лендинг на 1 страницу", "Адаптивный дизайн", "Базовая SEO-оптимизация"},
		Duration: "Срок: 7 дней",
	},
	{
		Name:     "Бизнес",
		Price:    "от 49 900 ₽",
		Tagline:  "Для растущего бизнеса",
		Features: []string{"Многостраничный сайт", "Уникальный дизайн", "Полная SEO-оптимизация", "CMS-система"},
		Duration: "Срок: 14 дней",
	},
	{
		Name:     "Премиум",
		Price:    "от 89 900 ₽",
		Tagline:  "Максимум возможностей",
		Features: []string{"Многостраничный сайт", "CMS-система", "Брендинг и айдентика", "Продвинутая анимация", "Подключение API", "Поддержка 3 месяца"},
		Duration: "Срок: 21 день",
	},
}

var faqItems = []domain.FAQItem{
	{Question: "Сколько занимает запуск?", Answer: "Обычно 3–7 дней для лендинга и 7–14 дней для сайта, зависит от объёма."},
	{Question: "Что нужно от меня для старта?", Answer: "Короткий бриф, примеры, контент (если есть), доступ к домену/хостингу при необходимости."},
	{Question: "Вы делаете дизайн с нуля?", Answer: "Да, под задачу. Можем опираться на референсы или ваш бренд-стиль."},
	{Question: "Можно ли потом редактировать сайт?", Answer: "Да. Передаём код/структуру и можем подключить удобное управление контентом по запросу."},
	{Question: "Подключаете аналитику?", Answer: "Да: GA4/Метрика, события/цели, UTM, базовые отчёты."},
	{Question: "Запускаете рекламу?", Answer: "Да: настройка кампаний, креативы, оптимизация по метрикам (CPA/CPL) при наличии бюджета."},
	{Question: "Гарантируете рост просмотров/кликов?", Answer: "Нет гарантий по результату, но делаем измеримую оптимизацию и прозрачную отчётность."},
	{Question: "Что входит в поддержку?", Answer: "Правки контента, мелкие улучшения, контроль работоспособности — формат зависит от пакета."},
	{Question: "Где будет размещён сайт?", Answer: "На вашем или рекомендованном хостинге; поможем с доменом и деплоем."},
	{Question: "Как проходит оплата?", Answer: "Обычно предоплата за этап + финальный платёж после сдачи."},
}

func (uc *contentUsecase) Packages() []domain.PricingPackage {
	return pricingPackages
}

func (uc *contentUsecase) FAQ() []domain.FAQItem {
	return faqItems
}
