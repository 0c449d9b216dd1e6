package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"searchpro/internal/ui/input/types"
)

type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "query", "Поиск в интернете...", ti),
	}
}

type MusicMode struct {
	TextInputMode
}

func NewMusicMode(ti *textinput.Model) *MusicMode {
	return &MusicMode{
		TextInputMode: NewTextInputMode(types.ModeMusic, "music", "Например: энергичная рок-музыка 90-х", ti),
	}
}
