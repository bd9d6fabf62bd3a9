package scenes

import "github.com/scrawlkit/doodle"

var greetings = []string{
	"Hello, World!",
	"Hola, Mundo!",
	"Bonjour, Monde!",
	"Hallo, Welt!",
	"Ciao, Mondo!",
	"こんにちは、世界！",
	"안녕하세요, 세계!",
	"Привет, мир!",
	"Olá, Mundo!",
	"नमस्ते, दुनिया!",
	"Merhaba, Dünya!",
	"Salam, Dünya!",
	"Hej, Världen!",
	"Hei, Maailma!",
	"שלום, עולם!",
	"Szia, Világ!",
	"Zdravo, Svijete!",
	"Sawubona, Mhlaba!",
	"Marhaba, Alalam!",
	"你好，世界！",
}

// Words scatters greetings in random fonts and grey tones, three passes over
// the full list.
func Words(w *doodle.World) {
	rng := w.Rand()
	fonts := []string{"small", "medium", "large"}
	greys := []doodle.Color{doodle.LightGrey, doodle.DarkGrey}
	for range 3 {
		for _, s := range greetings {
			doodle.NewText(w, nil).
				Randomize().
				SetFont(fonts[rng.IntN(len(fonts))]).
				SetColor(greys[rng.IntN(len(greys))]).
				SetText(s)
		}
	}
}
