package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
	"github.com/puffplace74/warehouse-bot/internal/core/service"
)

// TelegramHandler is the transport adapter: it turns inline-keyboard
// callbacks into selection actions, feeds them to the dialog service
// and renders the structured replies back as edited messages.
type TelegramHandler struct {
	dialog *service.DialogService
}

func NewTelegramHandler(dialog *service.DialogService) *TelegramHandler {
	return &TelegramHandler{dialog: dialog}
}

// Register wires the handler into the bot.
func (h *TelegramHandler) Register(b *tele.Bot) {
	b.Handle("/start", h.onStart)
	b.Handle(tele.OnCallback, h.onCallback)
	b.Handle(tele.OnText, func(c tele.Context) error {
		return c.Send("Используйте кнопки меню для навигации")
	})
}

func (h *TelegramHandler) onStart(c tele.Context) error {
	text, markup := h.renderMainMenu()
	return c.Send(text, markup)
}

func (h *TelegramHandler) onCallback(c tele.Context) error {
	defer c.Respond()

	data := strings.TrimPrefix(strings.TrimSpace(c.Callback().Data), "\f")
	act, err := domain.DecodeAction(data)
	if err != nil {
		log.Printf("callback from %q rejected: %v", identityOf(c), err)
		text, markup := h.renderError(err, service.Reply{})
		return h.edit(c, text, markup)
	}

	reply, err := h.dialog.Handle(context.Background(), identityOf(c), act)
	if err != nil {
		text, markup := h.renderError(err, reply)
		return h.edit(c, text, markup)
	}
	text, markup := h.render(reply)
	return h.edit(c, text, markup)
}

func identityOf(c tele.Context) string {
	if u := c.Sender(); u != nil && u.Username != "" {
		return "@" + u.Username
	}
	return ""
}

func (h *TelegramHandler) edit(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if err := c.Edit(text, markup, tele.ModeMarkdown); err != nil {
		// Telegram rejects edits that change nothing; fall back to a
		// fresh message for anything else.
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		return c.Send(text, markup, tele.ModeMarkdown)
	}
	return nil
}

func (h *TelegramHandler) render(r service.Reply) (string, *tele.ReplyMarkup) {
	switch r.Kind {
	case service.ReplyMainMenu:
		return h.renderMainMenu()
	case service.ReplyWarehouseMenu:
		return h.renderWarehouseMenu(r)
	case service.ReplyStockView:
		return h.renderStockView(r)
	case service.ReplyProductList:
		return h.renderProductList(r)
	case service.ReplyConfirmPrompt:
		return h.renderConfirmPrompt(r)
	case service.ReplySaleDone:
		text := fmt.Sprintf("✅ Продажа товара '%s' зарегистрирована!\nСклад: %s\nОсталось: %d шт.\n\nЧто дальше?",
			r.Product, warehouseTitle(r.Warehouse), r.Quantity)
		return text, afterSaleMarkup(r.Warehouse)
	case service.ReplyCancelled:
		return "❌ Продажа отменена\n\nЧто дальше?", afterSaleMarkup(r.Warehouse)
	case service.ReplyResetDone:
		return "✅ Данные сброшены к исходным значениям!", mainMenuOnlyMarkup()
	}
	return h.renderMainMenu()
}

func (h *TelegramHandler) renderError(err error, r service.Reply) (string, *tele.ReplyMarkup) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "❌ У вас нет доступа к этому разделу", mainMenuOnlyMarkup()
	case errors.Is(err, domain.ErrOutOfStock):
		return fmt.Sprintf("❌ Товара '%s' нет в наличии!\n\nЧто дальше?", r.Product), afterSaleMarkup(r.Warehouse)
	case errors.Is(err, domain.ErrUnknownProduct), errors.Is(err, domain.ErrInvalidSelection):
		return "❌ Товар больше недоступен, выберите заново", afterSaleMarkup(r.Warehouse)
	case errors.Is(err, domain.ErrPersistence):
		return "⚠️ Не удалось сохранить изменения, попробуйте ещё раз", afterSaleMarkup(r.Warehouse)
	}
	return "⚠️ Что-то пошло не так, попробуйте ещё раз", mainMenuOnlyMarkup()
}

func (h *TelegramHandler) renderMainMenu() (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{
		{{Text: "📦 Посмотреть наличие", Data: domain.Action{Kind: domain.ActionViewMenu}.Encode()}},
		{{Text: "💰 Регистрация продаж", Data: domain.Action{Kind: domain.ActionSalesMenu}.Encode()}},
	}}
	return "Добро пожаловать! Выберите раздел:", markup
}

func (h *TelegramHandler) renderWarehouseMenu(r service.Reply) (string, *tele.ReplyMarkup) {
	rows := make([][]tele.InlineButton, 0, len(domain.Warehouses())+2)
	for _, w := range domain.Warehouses() {
		rows = append(rows, []tele.InlineButton{{
			Text: warehouseButton(w),
			Data: domain.Action{Kind: domain.ActionWarehouse, Mode: r.Mode, Warehouse: w}.Encode(),
		}})
	}
	if r.Mode == domain.ModeSell && r.CanReset {
		rows = append(rows, []tele.InlineButton{{
			Text: "🔄 Сбросить все данные",
			Data: domain.Action{Kind: domain.ActionReset}.Encode(),
		}})
	}
	rows = append(rows, mainMenuRow())

	purpose := "посмотреть наличие"
	if r.Mode == domain.ModeSell {
		purpose = "регистрации продаж"
	}
	return fmt.Sprintf("Выберите склад для %s:", purpose), &tele.ReplyMarkup{InlineKeyboard: rows}
}

func (h *TelegramHandler) renderStockView(r service.Reply) (string, *tele.ReplyMarkup) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📦 *Склад %s*\n\n", warehouseTitle(r.Warehouse))
	for _, rec := range r.Products {
		fmt.Fprintf(&sb, "%s %s: %d шт.\n", stockEmoji(rec.Quantity), rec.Name, rec.Quantity)
	}

	markup := &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{
		{{Text: "🔙 Назад к выбору склада", Data: domain.Action{Kind: domain.ActionWarehouseMenu, Mode: domain.ModeView}.Encode()}},
		mainMenuRow(),
	}}
	return sb.String(), markup
}

func (h *TelegramHandler) renderProductList(r service.Reply) (string, *tele.ReplyMarkup) {
	rows := make([][]tele.InlineButton, 0, len(r.Products)+2)
	for i, rec := range r.Products {
		rows = append(rows, []tele.InlineButton{{
			Text: productButton(rec),
			Data: domain.Action{Kind: domain.ActionProduct, Warehouse: r.Warehouse, Index: i}.Encode(),
		}})
	}
	rows = append(rows,
		[]tele.InlineButton{{Text: "🔙 Назад к выбору склада", Data: domain.Action{Kind: domain.ActionWarehouseMenu, Mode: domain.ModeSell}.Encode()}},
		mainMenuRow(),
	)

	text := fmt.Sprintf("💰 *Регистрация продаж - Склад %s*\n\nВыберите товар:", warehouseTitle(r.Warehouse))
	return text, &tele.ReplyMarkup{InlineKeyboard: rows}
}

func (h *TelegramHandler) renderConfirmPrompt(r service.Reply) (string, *tele.ReplyMarkup) {
	text := fmt.Sprintf(
		"💰 *Подтверждение продажи*\n\n📦 Товар: %s\n🏢 Склад: %s\n📊 Текущее наличие: %d шт.\n\nПодтвердить продажу?",
		r.Product, warehouseTitle(r.Warehouse), r.Quantity,
	)
	markup := &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{
		{
			{Text: "✅ Да", Data: domain.Action{Kind: domain.ActionConfirm, Warehouse: r.Warehouse, Index: r.Index, Approved: true}.Encode()},
			{Text: "❌ Нет", Data: domain.Action{Kind: domain.ActionConfirm, Warehouse: r.Warehouse, Index: r.Index}.Encode()},
		},
		{{Text: "🔙 Назад к товарам", Data: domain.Action{Kind: domain.ActionWarehouse, Mode: domain.ModeSell, Warehouse: r.Warehouse}.Encode()}},
	}}
	return text, markup
}

func afterSaleMarkup(w domain.Warehouse) *tele.ReplyMarkup {
	rows := [][]tele.InlineButton{}
	if w != "" {
		rows = append(rows, []tele.InlineButton{{
			Text: "🔄 Еще продажа",
			Data: domain.Action{Kind: domain.ActionWarehouse, Mode: domain.ModeSell, Warehouse: w}.Encode(),
		}})
	}
	rows = append(rows, mainMenuRow())
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

func mainMenuRow() []tele.InlineButton {
	return []tele.InlineButton{{Text: "🔙 Главное меню", Data: domain.Action{Kind: domain.ActionMainMenu}.Encode()}}
}

func mainMenuOnlyMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{mainMenuRow()}}
}

func warehouseTitle(w domain.Warehouse) string {
	switch w {
	case domain.WarehouseCity:
		return "Город"
	case domain.WarehouseTalovka:
		return "Таловка"
	default:
		return string(w)
	}
}

func warehouseButton(w domain.Warehouse) string {
	switch w {
	case domain.WarehouseCity:
		return "🏢 Склад Город"
	case domain.WarehouseTalovka:
		return "🏭 Склад Таловка"
	default:
		return "🏢 Склад " + string(w)
	}
}

func stockEmoji(qty int) string {
	if qty > 0 {
		return "🟢"
	}
	return "🔴"
}

// brandAbbreviations shortens long brand prefixes so product buttons
// stay readable on narrow screens.
var brandAbbreviations = []struct{ long, short string }{
	{"Malasian x Protest - ", "MxP "},
	{"Podonki Blood - ", "PB "},
	{"Анархия V2 Strong ", "Анархия "},
	{"Монархия - ", "Монархия "},
	{"MPAK & ЧЁ NADO - ", "MPAK "},
	{"Хаски на Аляске Hard - ", "Хаски "},
	{"LOST MARY MO30000 - ", "LM "},
	{"LOST MARY OS12000 ", "LM "},
}

func productButton(rec domain.ProductRecord) string {
	name := rec.Name
	for _, ab := range brandAbbreviations {
		name = strings.ReplaceAll(name, ab.long, ab.short)
	}
	if runes := []rune(name); len(runes) > 30 {
		name = string(runes[:27]) + "..."
	}
	return fmt.Sprintf("%s %s (%d шт.)", stockEmoji(rec.Quantity), name, rec.Quantity)
}
