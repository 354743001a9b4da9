// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/scene"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/application/state"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorBG        = color.RGBA{26, 46, 26, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorRobot     = color.RGBA{100, 200, 230, 255}
	colorZombie    = color.RGBA{150, 170, 90, 255}
	colorAttack    = color.RGBA{255, 255, 255, 255}
	colorNPC       = color.RGBA{120, 120, 220, 255}
	colorPart      = color.RGBA{255, 215, 0, 255}
	colorWorkbench = color.RGBA{140, 90, 50, 255}
	colorBubble    = color.RGBA{250, 250, 240, 230}
	colorUrgent    = color.RGBA{255, 230, 150, 240}
	colorText      = color.RGBA{20, 20, 20, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
)

// Bubble text layout with basicfont.Face7x13
const (
	glyphWidth     = 7
	lineHeight     = 13
	bubbleMaxChars = 28
	bubblePadding  = 3
	bubbleGapAbove = 4
)

// Playing is the main gameplay scene
type Playing struct {
	session *Session
	log     *logrus.Entry
	screenW int
	screenH int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, mapCfg *config.MapConfig, seed int64, recordPath string, log *logrus.Entry) (*Playing, error) {
	session, err := NewSession(cfg, mapCfg, seed, log)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		session:        session,
		log:            log,
		screenW:        cfg.Settings.Display.ScreenWidth,
		screenH:        cfg.Settings.Display.ScreenHeight,
		recordFilename: recordPath,
	}

	// Initialize recorder if recording is enabled
	if recordPath != "" {
		p.recorder = NewRecorder(seed, mapCfg.Name)
		log.WithFields(logrus.Fields{"file": recordPath, "seed": seed}).Info("Recording enabled")
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.session.State() {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.session.Resume()
		}
	case state.StateGameOver, state.StateVictory:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	// Check for pause
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.session.Pause()
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.session.input.GetInput()

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.session.Tick(input)

	// Auto-save recording when the run ends
	if p.session.State().IsOver() && p.recorder != nil {
		p.saveRecording()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Warn("Failed to save recording")
	} else {
		p.log.WithFields(logrus.Fields{
			"file":   filename,
			"frames": p.recorder.FrameCount(),
		}).Info("Recording saved")
	}
}

func (p *Playing) restart() error {
	seed := time.Now().UnixNano()
	if err := p.session.Restart(seed); err != nil {
		return fmt.Errorf("failed to restart session: %w", err)
	}

	// Reset recorder if recording
	if p.recordFilename != "" {
		p.recorder = NewRecorder(seed, p.session.MapName())
		p.log.WithField("seed", seed).Info("Recording restarted")
	}
	return nil
}

// camera returns the top-left of the view, centered on the player and
// clamped to the map
func (p *Playing) camera() (float64, float64) {
	center := p.session.Player().Center()
	grid := p.session.Grid()

	camX := clampCam(center.X-float64(p.screenW)/2, grid.PixelWidth()-float64(p.screenW))
	camY := clampCam(center.Y-float64(p.screenH)/2, grid.PixelHeight()-float64(p.screenH))
	return camX, camY
}

func clampCam(v, maxV float64) float64 {
	if v > maxV {
		v = maxV
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()

	p.drawTiles(screen, camX, camY)
	p.drawProps(screen, camX, camY)
	for _, z := range p.session.Enemies() {
		p.drawActor(screen, z, colorZombie, camX, camY)
	}
	if robot := p.session.Robot(); robot != nil {
		p.drawActor(screen, robot, colorRobot, camX, camY)
	}
	p.drawActor(screen, p.session.Player(), colorPlayer, camX, camY)
	p.drawBubbles(screen, camX, camY)

	p.drawUI(screen)

	switch p.session.State() {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, "GAME OVER\n\nPress Z to restart")
	case state.StateVictory:
		p.drawOverlay(screen, color.RGBA{0, 80, 0, 180}, "YOU WIN!\n\nPress Z to play again")
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	grid := p.session.Grid()
	ts := grid.TileSize()
	start := grid.PixelToTile(camX, camY)
	end := grid.PixelToTile(camX+float64(p.screenW), camY+float64(p.screenH))

	for ty := start.Y; ty <= end.Y && ty < grid.Height(); ty++ {
		for tx := start.X; tx <= end.X && tx < grid.Width(); tx++ {
			if !grid.IsBlocked(tx, ty) {
				continue
			}
			x := float64(tx*ts) - camX
			y := float64(ty*ts) - camY
			ebitenutil.DrawRect(screen, x, y, float64(ts), float64(ts), colorWall)
		}
	}
}

func (p *Playing) drawProps(screen *ebiten.Image, camX, camY float64) {
	if wb := p.session.Workbench(); wb.W > 0 {
		ebitenutil.DrawRect(screen, wb.X-camX, wb.Y-camY, wb.W, wb.H, colorWorkbench)
	}

	for _, part := range p.session.Parts() {
		if part.Collected {
			continue
		}
		ebitenutil.DrawRect(screen, part.Pos.X-camX, part.Pos.Y-camY, part.Size.W, part.Size.H, colorPart)
	}

	for _, t := range p.session.Talkers() {
		n := t.NPC
		ebitenutil.DrawRect(screen, n.Pos.X-camX, n.Pos.Y-camY, n.Size.W, n.Size.H, colorNPC)
	}
}

func (p *Playing) drawActor(screen *ebiten.Image, a *entity.Actor, c color.Color, camX, camY float64) {
	if !a.Visible {
		return
	}
	if a.Pose == entity.PoseAttack {
		c = colorAttack
	}

	x := a.Pos.X - camX
	y := a.Pos.Y - camY
	ebitenutil.DrawRect(screen, x, y, a.Size.W, a.Size.H, c)

	// Facing marker
	mx, my := x+a.Size.W/2-1, y+a.Size.H/2-1
	switch a.Facing {
	case entity.DirUp:
		my = y
	case entity.DirDown:
		my = y + a.Size.H - 2
	case entity.DirLeft:
		mx = x
	case entity.DirRight:
		mx = x + a.Size.W - 2
	}
	ebitenutil.DrawRect(screen, mx, my, 2, 2, colorText)
}

func (p *Playing) drawBubbles(screen *ebiten.Image, camX, camY float64) {
	face := basicfont.Face7x13

	for _, t := range p.session.Talkers() {
		if !t.Bubble.Visible() {
			continue
		}

		lines := wrapText(t.Bubble.CurrentText(), bubbleMaxChars)
		w, h := bubbleSize(lines)
		x := t.NPC.Pos.X + t.NPC.Size.W/2 - float64(w)/2 - camX
		y := t.NPC.Pos.Y - float64(h) - bubbleGapAbove - camY
		x = clampCam(x, float64(p.screenW-w))
		y = clampCam(y, float64(p.screenH-h))

		bg := colorBubble
		if t.Bubble.Urgent() {
			bg = colorUrgent
		}
		ebitenutil.DrawRect(screen, x, y, float64(w), float64(h), bg)

		for i, line := range lines {
			// text.Draw takes the baseline
			tx := int(x) + bubblePadding
			ty := int(y) + bubblePadding + (i+1)*lineHeight - 3
			text.Draw(screen, line, face, tx, ty, colorText)
		}
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	player := p.session.Player()

	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	healthRatio := float64(player.Health) / float64(player.MaxHealth)
	if healthRatio < 0 {
		healthRatio = 0
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	progress := p.session.Progress()
	status := fmt.Sprintf("Parts: %d/%d  Zombies: %d", progress.PartsCollected, progress.PartsRequired, len(p.session.Enemies()))
	if progress.RobotBuilt() {
		status += "  Robot: online"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-35)

	ebitenutil.DebugPrint(screen, "WASD: Move | Space: Attack | E: Use | ESC: Pause")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, msg string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, msg, p.screenW/2-60, p.screenH/2-30)
}

// wrapText breaks s into lines of at most maxChars runes on word boundaries.
// Words longer than maxChars are split.
func wrapText(s string, maxChars int) []string {
	var lines []string
	var cur []rune

	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > maxChars {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:maxChars]))
			w = w[maxChars:]
		}

		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= maxChars:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), w...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

// bubbleSize returns the pixel size of a bubble holding lines
func bubbleSize(lines []string) (int, int) {
	longest := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}
	return longest*glyphWidth + 2*bubblePadding, len(lines)*lineHeight + 2*bubblePadding
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	p.session.Close()
}

// Session returns the simulation behind the scene
func (p *Playing) Session() *Session {
	return p.session
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
