package domain

// DefaultInventory is the built-in snapshot used when the state file is
// absent or unreadable, and the target of a stock reset.
func DefaultInventory() Inventory {
	return Inventory{
		WarehouseCity: {
			{Name: "Malasian x Protest - Виноград мармелад", Quantity: 3},
			{Name: "Malasian x Protest - Кола ваниль", Quantity: 2},
			{Name: "Malasian x Protest - Красные лесные ягоды", Quantity: 3},
			{Name: "Malasian x Protest - Лайм киви", Quantity: 3},
			{Name: "Podonki Blood - Малиновый лимонад", Quantity: 3},
			{Name: "Podonki Blood - Чёрная смородина", Quantity: 3},
			{Name: "Анархия V2 Strong Лимонный мармелад", Quantity: 2},
			{Name: "Анархия V2 Strong Клюква брусника", Quantity: 2},
			{Name: "Монархия - Лимон виноград", Quantity: 2},
			{Name: "Монархия - Малина лимон", Quantity: 2},
			{Name: "MPAK & ЧЁ NADO - Арбуз малина", Quantity: 3},
			{Name: "MPAK & ЧЁ NADO - Виноград мята", Quantity: 3},
			{Name: "MPAK & ЧЁ NADO - Кислый персик", Quantity: 3},
			{Name: "MPAK & ЧЁ NADO - Спрайт", Quantity: 3},
			{Name: "Хаски на Аляске Hard - Вишня жимолость", Quantity: 2},
			{Name: "Хаски на Аляске Hard - Черешня клюква", Quantity: 2},
			{Name: "Хаски на Аляске Hard - Яблоко клюква", Quantity: 2},
			{Name: "LOST MARY MO30000 - Кислый виноград лёд", Quantity: 1},
			{Name: "LOST MARY OS12000 Виноград лимон лёд", Quantity: 0},
			{Name: "LOST MARY OS12000 Леданая ежевика", Quantity: 1},
			{Name: "Malasian x Protest - Маракуйя зелёное яблок", Quantity: 2},
			{Name: "Хаски на Аляске Hard - Ананас малина", Quantity: 2},
			{Name: "Монархия - Смородиновые леденцы", Quantity: 2},
			{Name: "Хаски на Аляске Hard - Красная смородина", Quantity: 2},
		},
		WarehouseTalovka: {
			{Name: "Malasian x Protest - Виноград мармелад", Quantity: 1},
			{Name: "Malasian x Protest - Кола ваниль", Quantity: 1},
			{Name: "Malasian x Protest - Красные лесные ягоды", Quantity: 0},
			{Name: "Malasian x Protest - Лайм киви", Quantity: 1},
			{Name: "Podonki Blood - Малиновый лимонад", Quantity: 1},
			{Name: "Podonki Blood - Чёрная смородина", Quantity: 1},
			{Name: "Анархия V2 Strong Лимонный мармелад", Quantity: 1},
			{Name: "Анархия V2 Strong Клюква брусника", Quantity: 1},
			{Name: "Монархия - Лимон виноград", Quantity: 1},
			{Name: "Монархия - Малина лимон", Quantity: 1},
			{Name: "MPAK & ЧЁ NADO - Арбуз малина", Quantity: 1},
			{Name: "MPAK & ЧЁ NADO - Виноград мята", Quantity: 1},
			{Name: "MPAK & ЧЁ NADO - Кислый персик", Quantity: 1},
			{Name: "MPAK & ЧЁ NADO - Спрайт", Quantity: 1},
			{Name: "Хаски на Аляске Hard - Вишня жимолость", Quantity: 1},
			{Name: "Хаски на Аляске Hard - Черешня клюква", Quantity: 1},
			{Name: "Хаски на Аляске Hard - Яблоко клюква", Quantity: 1},
			{Name: "LOST MARY MO30000 - Кислый виноград лёд", Quantity: 1},
			{Name: "LOST MARY OS12000 Виноград лимон лёд", Quantity: 0},
			{Name: "LOST MARY OS12000 Ледяная ежевика", Quantity: 1},
			{Name: "Malasian x Protest - Маракуйя зелёное яблоко", Quantity: 2},
			{Name: "Хаски на Аляске Hard - Ананас малина", Quantity: 2},
			{Name: "Монархия - Смородиновые леденцы", Quantity: 2},
			{Name: "Хаски на Аляске Hard - Красная смородина", Quantity: 2},
		},
	}
}
