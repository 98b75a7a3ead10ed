package constant

const (
	WINDOW_WIDTH  = 640
	WINDOW_HEIGHT = 480
	WINDOW_TITLE  = "Hello World"
	TARGET_FPS    = 60
	LINE_Y        = 50
	LINE_X_BEGIN  = 50
	LINE_X_END    = 350
	CURSOR_COLOR  = 0xffffff
)
