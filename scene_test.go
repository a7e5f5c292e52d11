package petal

import (
	"testing"

	"github.com/sirupsen/logrus"
)

type recordingStore struct {
	styles []StyleEvent
	phases []PhaseEvent
}

func (r *recordingStore) EmitStyleEvent(e StyleEvent) { r.styles = append(r.styles, e) }
func (r *recordingStore) EmitPhaseEvent(e PhaseEvent) { r.phases = append(r.phases, e) }

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("Root should not be nil")
	}
	if s.Root().Name != "root" {
		t.Errorf("root name = %q, want %q", s.Root().Name, "root")
	}
	if s.Assets() != nil {
		t.Error("new scene should have no asset server")
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)
	defer s.SetEntityStore(nil)

	btn := NewPanel("btn")
	btn.Interactable = true
	btn.EntityID = 5
	s.Root().AddChild(btn)

	s.HandleEvent(btn, EventPointerDown)
	if len(store.phases) != 1 {
		t.Fatalf("phase events = %d, want 1", len(store.phases))
	}
	if got := store.phases[0]; got.Phase != PhasePressed || got.EntityID != 5 || got.NodeName != "btn" {
		t.Errorf("phase event = %+v", got)
	}
}

func TestNewSceneDetachesEarlierScene(t *testing.T) {
	first := NewScene()
	store := &recordingStore{}
	first.SetEntityStore(store)
	first.SetAssetServer(NewAssetServer(newTestFs(t), "ui"))

	second := NewScene()
	if globalStore != nil || globalAssets != nil {
		t.Fatal("NewScene should clear the previous scene's store and assets")
	}
	btn := NewPanel("btn")
	btn.Interactable = true
	second.Root().AddChild(btn)
	second.HandleEvent(btn, EventPointerEnter)
	if len(store.phases) != 0 {
		t.Errorf("first scene's store got %d events from the second scene", len(store.phases))
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug mode should be on")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug mode should be off")
	}
}

func TestHandleEventMapsPhases(t *testing.T) {
	s := NewScene()
	n := NewPanel("btn")
	n.Interactable = true

	cases := []struct {
		event EventType
		want  InteractionPhase
	}{
		{EventPointerEnter, PhasePointerEnter},
		{EventPointerDown, PhasePressed},
		{EventPointerUp, PhaseReleased},
		{EventPointerDown, PhasePressed},
		{EventPressCanceled, PhasePressCanceled},
		{EventPointerLeave, PhasePointerLeave},
	}
	for _, c := range cases {
		s.HandleEvent(n, c.event)
		if n.Phase() != c.want {
			t.Errorf("after %v phase = %v, want %v", c.event, n.Phase(), c.want)
		}
	}
}

func TestHandleEventIgnoresNonInteractable(t *testing.T) {
	s := NewScene()
	n := NewPanel("label")
	if s.HandleEvent(n, EventPointerEnter) {
		t.Error("non-interactable node should ignore events")
	}
	if s.HandleEvent(nil, EventPointerEnter) {
		t.Error("nil node should be ignored")
	}
}

func TestSceneUpdateAppliesStyles(t *testing.T) {
	s := NewScene()
	btn := NewPanel("btn")
	btn.Interactable = true
	s.Root().AddChild(btn)

	b := NewStyleBuilder().Width(Px(120))
	b.Interactive().BackgroundColor(Vals(ColorTransparent).WithHover(ColorWhite))
	btn.SetStyle(b.Build())

	s.Update(1.0 / 60)
	if btn.Layout.Width != Px(120) {
		t.Errorf("Width = %v, want 120px", btn.Layout.Width)
	}
	if *btn.BackgroundColor != ColorTransparent {
		t.Errorf("BackgroundColor = %v, want transparent", *btn.BackgroundColor)
	}

	s.HandleEvent(btn, EventPointerEnter)
	s.Update(1.0 / 60)
	if *btn.BackgroundColor != ColorWhite {
		t.Errorf("BackgroundColor after enter = %v, want white", *btn.BackgroundColor)
	}

	rev := btn.Revision()
	s.Update(1.0 / 60)
	if btn.Revision() != rev {
		t.Error("steady-state update should not write")
	}
}

func TestSceneUpdateAnimates(t *testing.T) {
	s := NewScene()
	btn := NewPanel("btn")
	btn.Interactable = true
	s.Root().AddChild(btn)

	b := NewStyleBuilder()
	b.Animated(Animate(1, nil)).Width(Vals(Px(100)).WithHover(Px(200)))
	btn.SetStyle(b.Build())

	s.Update(0.1)
	s.HandleEvent(btn, EventPointerEnter)
	s.Update(0.5)
	if got := btn.Layout.Width; got.Unit != UnitPx || got.Value < 149.99 || got.Value > 150.01 {
		t.Errorf("Width mid-transition = %v, want ~150px", got)
	}
	s.Update(1)
	if btn.Layout.Width != Px(200) {
		t.Errorf("Width settled = %v, want 200px", btn.Layout.Width)
	}
}

func TestSceneUpdateAbsolutePositionUsesFreshTransform(t *testing.T) {
	s := NewScene()
	parent := NewPanel("parent")
	child := NewPanel("child")
	s.Root().AddChild(parent)
	parent.AddChild(child)
	parent.SetPosition(40, 40)
	child.SetStyle(NewStyleBuilder().AbsolutePosition(Vec2{X: 50, Y: 60}).Build())

	s.Update(0)
	if child.Layout.Left != Px(10) || child.Layout.Top != Px(20) {
		t.Errorf("Left/Top = %v/%v, want 10px/20px", child.Layout.Left, child.Layout.Top)
	}
}

func TestSceneForwardsSkips(t *testing.T) {
	captureLogs(t)
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)
	defer s.SetEntityStore(nil)

	group := NewContainer("group")
	s.Root().AddChild(group)
	group.SetStyle(NewStyleBuilder().BackgroundColor(ColorWhite).Build())
	s.Update(0)

	if len(store.styles) != 1 {
		t.Fatalf("style events = %d, want 1", len(store.styles))
	}
	if got := store.styles[0]; got.Reason != SkipMissingTarget || got.Attribute != AttrBackgroundColor {
		t.Errorf("style event = %+v", got)
	}
}

func TestSceneDebugLog(t *testing.T) {
	hook := captureLogs(t)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	p := NewPanel("p")
	s.Root().AddChild(p)
	p.SetStyle(NewStyleBuilder().Width(Px(1)).Height(Px(2)).Build())
	s.Update(0)

	e := hook.LastEntry()
	if e == nil || e.Level != logrus.DebugLevel {
		t.Fatalf("last entry = %v, want debug stats", e)
	}
	if e.Data["nodes"] != 2 || e.Data["decls"] != 2 || e.Data["writes"] != uint64(2) {
		t.Errorf("stats = %v", e.Data)
	}
}

func TestScenePollsAssets(t *testing.T) {
	s := NewScene()
	assets := NewAssetServer(newTestFs(t), "ui")
	s.SetAssetServer(assets)
	defer s.SetAssetServer(nil)

	icon := NewImageNode("icon", ImageHandle{})
	s.Root().AddChild(icon)
	icon.SetStyle(NewStyleBuilder().Image("icon.png").Build())

	s.Update(0)
	if assets.State(icon.Image.Handle) != AssetPending {
		t.Fatalf("state after first update = %v, want pending", assets.State(icon.Image.Handle))
	}
	s.Update(0)
	if assets.State(icon.Image.Handle) != AssetLoaded {
		t.Errorf("state after second update = %v, want loaded", assets.State(icon.Image.Handle))
	}
}
