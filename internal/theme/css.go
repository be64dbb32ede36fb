package theme

import (
	"bytes"
	"fmt"
	"text/template"
)

var stylesheet = template.Must(template.New("theme.css").Funcs(template.FuncMap{
	"px":  func(n int) string { return fmt.Sprintf("%dpx", n) },
	"inc": func(i int) int { return i + 1 },
}).Parse(`:root {
  --primary: {{.Palette.Primary.Main}};
  --primary-light: {{.Palette.Primary.Light}};
  --primary-dark: {{.Palette.Primary.Dark}};
  --secondary: {{.Palette.Secondary.Main}};
  --secondary-light: {{.Palette.Secondary.Light}};
  --secondary-dark: {{.Palette.Secondary.Dark}};
  --bg: {{.Palette.Background}};
  --paper: {{.Palette.Paper}};
  --text: {{.Palette.TextPrimary}};
  --text-secondary: {{.Palette.TextSecondary}};
  --divider: {{.Palette.Divider}};
  --selected: {{.Palette.ActionSelected}};
  --hover: {{.Palette.ActionHover}};
  --radius: {{px .BorderRadius}};
  --drawer-width: {{px .DrawerWidth}};
}

*, *::before, *::after { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  background-color: var(--bg);
  color: var(--text);
  font-family: {{.Typography.FontFamily}};
  line-height: 1.5;
}
a { color: inherit; }
{{range $i, $w := .Typography.HeadingWeights}}h{{inc $i}} { font-weight: {{$w}}; }
{{end}}
*::-webkit-scrollbar { width: 8px; }
*::-webkit-scrollbar-track { background: var(--paper); }
*::-webkit-scrollbar-thumb { background: var(--primary-dark); border-radius: 4px; }
*::-webkit-scrollbar-thumb:hover { background: var(--primary); }

/* navigation shell */
.sidebar, .drawer {
  position: fixed; top: 0; bottom: 0; left: 0;
  width: var(--drawer-width);
  display: flex; flex-direction: column;
  background-color: var(--paper);
  z-index: 1200;
}
.sidebar { display: none; }
.owner { margin: 8px 0; padding: 16px; text-align: center; color: var(--primary); font-weight: 700; font-size: 1.25rem; }
.nav-list { list-style: none; margin: 0; padding: 16px; border-top: 1px solid var(--divider); }
.nav-link {
  display: flex; align-items: center; gap: 16px;
  min-height: 52px; padding: 0 16px; margin-bottom: 8px;
  border-radius: calc(var(--radius) * 1.5);
  text-decoration: none; color: var(--text);
}
.nav-link:hover { background-color: var(--hover); }
.nav-link.selected { background-color: var(--selected); }
.nav-icon { width: 24px; color: var(--text-secondary); }
.nav-link.selected .nav-icon { color: var(--primary); }
.copyright { margin-top: auto; padding: 16px; border-top: 1px solid var(--divider); color: var(--text-secondary); font-size: 0.75rem; }

.topbar {
  position: fixed; top: 0; left: 0; right: 0; height: 56px;
  display: flex; align-items: center; justify-content: space-between; padding: 0 16px;
  background: {{.Components.AppBarBackground}};
  backdrop-filter: blur({{px .Components.AppBarBlur}});
  z-index: 1300;
}
.topbar .owner { margin: 0; padding: 0; font-size: 1rem; }
.menu-toggle { width: 40px; height: 40px; display: flex; align-items: center; justify-content: center; cursor: pointer; font-size: 1.5rem; }
.menu-state { position: fixed; top: 8px; left: 16px; width: 40px; height: 40px; margin: 0; opacity: 0; pointer-events: none; z-index: 1301; }
.menu-state:focus-visible + .topbar .menu-toggle { outline: 2px solid var(--primary); }
.drawer { padding-top: 56px; transform: translateX(-100%); transition: transform 225ms {{.Motion.Easing}}; }
.menu-state:checked ~ .drawer { transform: none; }
.backdrop { display: none; position: fixed; inset: 0; background: rgba(0, 0, 0, 0.5); z-index: 1100; cursor: pointer; }
.menu-state:checked ~ .backdrop { display: block; }

.main { min-height: 100vh; display: flex; flex-direction: column; padding-top: 56px; }

@media (min-width: {{px .Breakpoints.MD}}) {
  .sidebar { display: flex; }
  .menu-state, .topbar, .drawer, .backdrop,
  .menu-state:checked ~ .drawer, .menu-state:checked ~ .backdrop { display: none; }
  .main { margin-left: var(--drawer-width); padding-top: 0; }
}

/* content */
.container { width: 100%; max-width: 1100px; margin: 0 auto; padding: 32px 16px; }
.heading { color: var(--primary); font-weight: 700; font-size: 1.6rem; line-height: 1.1; }
.lead { color: var(--text-secondary); }
.card {
  padding: 16px; margin-bottom: 24px;
  border: 1px solid var(--divider); border-radius: calc(var(--radius) * 2);
  background-color: var(--paper);
  transition: {{.Components.PaperTransition}};
}
.gradient {
  display: inline-block;
  background: linear-gradient(45deg, var(--primary-light) 30%, var(--secondary-light) 90%);
  -webkit-background-clip: text; background-clip: text;
  -webkit-text-fill-color: transparent;
}
.hero { display: flex; flex-direction: column; align-items: center; text-align: center; }
.avatar {
  width: 88px; height: 88px; margin-bottom: 24px; border-radius: 50%;
  border: 4px solid var(--primary); box-shadow: 0 0 24px {{.Palette.Primary.Light}}33; object-fit: cover;
}
.actions { display: flex; flex-direction: column; gap: 16px; align-items: center; justify-content: center; }
.btn-wrap { position: relative; border-radius: {{px .Components.ButtonRadius}}; padding: 2px; overflow: hidden; animation: pulse 3s ease-in-out infinite; }
.btn-wrap::before {
  content: ""; position: absolute; inset: -50%;
  background: conic-gradient(var(--primary), var(--secondary), var(--primary));
  opacity: 0; transition: opacity 200ms;
}
.btn-wrap:hover::before { opacity: 1; animation: rotate-border 2s linear infinite; }
.btn {
  position: relative; display: inline-flex; align-items: center; gap: 8px;
  padding: 8px 22px; border-radius: {{px .Components.ButtonRadius}};
  background: var(--primary); color: #000; text-decoration: none; text-transform: none; font-weight: 600;
}
.chips { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 16px; }
.chip { padding: 2px 10px; border: 1px solid var(--secondary); border-radius: 16px; color: var(--secondary); font-size: 0.8rem; }
.project-grid { display: grid; grid-template-columns: 1fr; gap: 32px; }
.project-card { display: flex; flex-direction: column; overflow: hidden; padding: 0; }
.project-card img { width: 100%; height: 200px; object-fit: cover; }
.project-body { padding: 16px; flex-grow: 1; }
.project-links { display: flex; gap: 8px; padding: 0 16px 16px; }
.timeline { list-style: none; margin: 0; padding: 0 0 0 24px; border-left: 2px solid var(--divider); }
.timeline-item { position: relative; margin-bottom: 32px; }
.timeline-dot { position: absolute; left: -33px; top: 6px; width: 16px; height: 16px; border-radius: 50%; }
.timeline-dot.primary { background: var(--primary); }
.timeline-dot.secondary { background: var(--secondary); }
.contact-links { display: flex; flex-direction: column; gap: 16px; align-items: center; justify-content: center; }
.contact-link { display: inline-flex; align-items: center; gap: 8px; padding: 12px 20px; border-radius: var(--radius); background: var(--paper); text-decoration: none; }

@media (min-width: {{px .Breakpoints.SM}}) {
  .heading { font-size: 2.1rem; }
  .avatar { width: 120px; height: 120px; }
  .actions, .contact-links { flex-direction: row; gap: 24px; }
  .project-grid { grid-template-columns: 1fr 1fr; }
  .card { padding: 24px; }
}
@media (min-width: {{px .Breakpoints.MD}}) {
  .heading { font-size: 2.5rem; }
  .avatar { width: 140px; height: 140px; }
  .container { padding: 64px 24px; }
}

/* entrance animations */
@keyframes slide-in-left { from { transform: translateX(-{{px .DrawerWidth}}); opacity: 0; } to { transform: none; opacity: 1; } }
@keyframes nudge-in-left { from { transform: translateX(-12px); opacity: 0; } to { transform: none; opacity: 1; } }
@keyframes rise-in { from { transform: translateY(18px) scale(0.98); opacity: 0; } to { transform: none; opacity: 1; } }
@keyframes fade-up { from { transform: translateY(20px); opacity: 0; } to { transform: none; opacity: 1; } }
@keyframes pulse { 0%, 100% { transform: scale(1); } 50% { transform: scale(1.03); } }
@keyframes rotate-border { from { transform: rotate(0deg); } to { transform: rotate(360deg); } }
@media (prefers-reduced-motion: reduce) {
  *, *::before, *::after { animation: none !important; transition: none !important; }
}
`))

// CSS renders the global stylesheet for the theme
func (t Theme) CSS() ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Theme
		Motion Variant
	}{Theme: t, Motion: Sidebar}
	if err := stylesheet.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render stylesheet: %w", err)
	}
	return buf.Bytes(), nil
}
