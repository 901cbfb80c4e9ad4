package testutil

// MonokaiTheme is a valid theme document.
const MonokaiTheme = `special:
  background: '#222222'
  foreground: '#f7f1ff'
  cursor: '#f7f1ff'

normal:
  black: '#363537'
  blue: '#948ae3'
  cyan: '#5ad4e6'
  green: '#7bd88f'
  magenta: '#fd9353'
  red: '#fc618d'
  white: '#bab6c0'
  yellow: '#fce566'

bright:
  black: '#69676c'
  blue: '#948ae3'
  cyan: '#5ad4e6'
  green: '#7bd88f'
  magenta: '#fd9353'
  red: '#fc618d'
  white: '#f7f1ff'
  yellow: '#fce566'
`

// NordTheme is a second valid theme, used where more than one is needed.
const NordTheme = `special:
  background: '#2e3440'
  foreground: '#d8dee9'
  cursor: '#d8dee9'
normal:
  black: '#3b4252'
  red: '#bf616a'
  green: '#a3be8c'
  yellow: '#ebcb8b'
  blue: '#81a1c1'
  magenta: '#b48ead'
  cyan: '#88c0d0'
  white: '#e5e9f0'
bright:
  black: '#4c566a'
  red: '#bf616a'
  green: '#a3be8c'
  yellow: '#ebcb8b'
  blue: '#81a1c1'
  magenta: '#b48ead'
  cyan: '#8fbcbb'
  white: '#eceff4'
`
