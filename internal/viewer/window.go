package viewer

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/kinograph/internal/chart"
	"github.com/san-kum/kinograph/internal/logger"
)

// Window shows the rendered figure in a native raylib window.
type Window struct {
	Width  int
	Height int
	Title  string
}

func NewWindow(width, height int) *Window {
	return &Window{Width: width, Height: height, Title: "kinograph"}
}

// Show renders fig once, uploads it as a texture and redraws it until the
// window is closed or ctx is done. Raylib must be driven from the main
// goroutine.
func (w *Window) Show(ctx context.Context, fig *chart.Figure) error {
	img, err := fig.Render(w.Width, w.Height)
	if err != nil {
		return err
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	defer rl.UnloadTexture(tex)

	logger.L().Debug("viewer.window.open", "width", w.Width, "height", w.Height)

	for !rl.WindowShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		rl.BeginDrawing()
		rl.ClearBackground(rl.White)
		rl.DrawTexture(tex, 0, 0, rl.White)
		rl.EndDrawing()
	}

	logger.L().Debug("viewer.window.closed")
	return nil
}
