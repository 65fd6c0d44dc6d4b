package pages

import "vartheme/internal/views/components"

// Code samples shown on the landing page.
const (
	InstallCode = `npm install vartheme`

	UsageCode = `import { ThemeProvider, ThemeToggle } from 'vartheme'

export default function App() {
  return (
    <ThemeProvider theme="ocean" mode="dark">
      <YourApp />
    </ThemeProvider>
  )
}`

	HookCode = `import { useThemeContext } from 'vartheme'

function Navbar() {
  const { resolvedMode, toggle, setTheme } = useThemeContext()

  return (
    <div>
      <button onClick={toggle}>
        {resolvedMode === 'dark' ? '☀️' : '🌙'}
      </button>

      <button onClick={() => setTheme('ocean')}>
        Ocean
      </button>
    </div>
  )
}`

	CSSCode = `.card {
  background: var(--vt-surface);
  color: var(--vt-text);
  border: 1px solid var(--vt-border);
}

.button {
  background: var(--vt-primary);
  color: white;
}`
)

// Step is a numbered code sample.
type Step struct {
	Label    string
	Code     string
	Language string
}

// HomeSteps are the getting started samples in display order.
var HomeSteps = []Step{
	{Label: "01 Install", Code: InstallCode, Language: "bash"},
	{Label: "02 Wrap your app", Code: UsageCode, Language: "tsx"},
	{Label: "03 Use the hook", Code: HookCode, Language: "tsx"},
	{Label: "04 Use CSS variables", Code: CSSCode, Language: "css"},
}

// FeatureList is the landing page feature grid.
var FeatureList = []components.Feature{
	{Icon: "⚡", Title: "Zero Config", Description: "No setup, no configuration. Just wrap your app and you're done."},
	{Icon: "🎨", Title: "5 Built-in Themes", Description: "Default, Ocean, Forest, Sunset, Rose. Beautiful out of the box."},
	{Icon: "🌙", Title: "Animated Toggle", Description: "Smooth sun to moon animation. No external icon library needed."},
	{Icon: "💾", Title: "Persistent", Description: "Theme saved in localStorage. Survives page refresh automatically."},
	{Icon: "🖥️", Title: "System Detection", Description: "Detects OS dark/light preference and applies it automatically."},
	{Icon: "📦", Title: "Under 7kb", Description: "Tiny bundle size. Won't slow down your app. Zero dependencies."},
	{Icon: "🔷", Title: "TypeScript Ready", Description: "Full TypeScript support with types included out of the box."},
	{Icon: "🎯", Title: "CSS Variables", Description: "Auto injects CSS variables. Use them anywhere in your styles."},
}

// DocSection is one anchor of the documentation page.
type DocSection struct {
	ID    string
	Label string
	Intro string
	Steps []Step
}

// InstallCommands maps package managers to their install command.
var InstallCommands = []Step{
	{Label: "npm", Code: "npm install vartheme", Language: "bash"},
	{Label: "yarn", Code: "yarn add vartheme", Language: "bash"},
	{Label: "pnpm", Code: "pnpm add vartheme", Language: "bash"},
}

// CSSVariable documents a variable injected by the library.
type CSSVariable struct {
	Name        string
	Description string
}

// LibraryVariables are the variables an application can rely on.
var LibraryVariables = []CSSVariable{
	{Name: "--vt-primary", Description: "The core brand color"},
	{Name: "--vt-background", Description: "Base page color"},
	{Name: "--vt-surface", Description: "Cards and Modals"},
	{Name: "--vt-text", Description: "Primary text color"},
}

// DocSections are the documentation sections in display order.
var DocSections = []DocSection{
	{
		ID:    "installation",
		Label: "Installation",
		Intro: "Install the package via your preferred package manager.",
		Steps: InstallCommands,
	},
	{
		ID:    "basic-usage",
		Label: "Basic Usage",
		Intro: "Simply wrap your root component with ThemeProvider. This provides the context for themes and handles automatic CSS variable injection.",
		Steps: []Step{
			{Code: UsageCode, Language: "tsx"},
			{Label: "Add the built-in animated toggle anywhere:", Language: "tsx", Code: `import { ThemeToggle } from 'vartheme'

function Navbar() {
  return (
    <nav>
      <h1>My App</h1>
      <ThemeToggle size={48} />
    </nav>
  )
}`},
		},
	},
	{
		ID:    "themes",
		Label: "Themes",
		Intro: "Vartheme comes with 5 hand-crafted color palettes.",
		Steps: []Step{{Language: "tsx", Code: `// Easily switch between presets:
<ThemeProvider theme="rose">
<ThemeProvider theme="sunset">
<ThemeProvider theme="forest">`}},
	},
	{
		ID:    "hook",
		Label: "useThemeContext",
		Intro: "Access theme state and controls from any component.",
		Steps: []Step{{Language: "tsx", Code: `import { useThemeContext } from 'vartheme'

function CustomControls() {
  const { mode, theme, toggle, setTheme } = useThemeContext()

  return (
    <button onClick={toggle}>Toggle Appearance</button>
  )
}`}},
	},
	{
		ID:    "css-variables",
		Label: "CSS Variables",
		Steps: []Step{{Language: "css", Code: `.card { background: var(--vt-surface); color: var(--vt-text); }`}},
	},
	{
		ID:    "tailwind",
		Label: "Tailwind Plugin",
		Steps: []Step{
			{Language: "js", Code: `// tailwind.config.js
const { varthemePlugin } = require('vartheme/tailwind')

module.exports = {
  plugins: [varthemePlugin],
}`},
			{Label: "Example usage:", Language: "tsx", Code: `<div className="bg-vt-surface text-vt-primary">Hello World</div>`},
		},
	},
	{
		ID:    "typescript",
		Label: "TypeScript",
		Steps: []Step{{Language: "tsx", Code: `import { ThemeName, ThemeColors } from 'vartheme'`}},
	},
}
