package components

// AnimationComponent 帧循环动画
//
// Cursor 每帧增加 Step，达到帧数后回到 0；
// 当前帧索引为 int(Cursor)。
type AnimationComponent struct {
	Frames []string // 每帧的图像资源ID
	Cursor float64  // 动画游标
	Step   float64  // 每帧前进量
}

// Advance 推进一帧并返回当前帧的图像资源ID
func (a *AnimationComponent) Advance() string {
	if len(a.Frames) == 0 {
		return ""
	}
	a.Cursor += a.Step
	if a.Cursor >= float64(len(a.Frames)) {
		a.Cursor = 0
	}
	return a.Frames[a.FrameIndex()]
}

// FrameIndex 当前帧索引
func (a *AnimationComponent) FrameIndex() int {
	return int(a.Cursor)
}
